package lexer

// TokenLen returns how many bytes of rest the next token of category cat
// occupies. rest starts at the token's first byte; the result is 0 only when
// rest is empty and never exceeds len(rest).
func TokenLen(cat Category, rest []byte) int {
	if len(rest) == 0 {
		return 0
	}
	switch cat {
	case CatNewline, CatSpecial:
		return 1
	case CatPrepro:
		return scanPrepro(rest)
	case CatDot:
		return scanDot(rest)
	case CatSlash:
		return scanSlash(rest)
	case CatWord:
		return scanIdent(rest)
	case CatOperator:
		return scanOperator(rest)
	case CatLiteral:
		return scanLiteral(rest)
	}
	// CatNil: измерять нечего
	return 0
}
