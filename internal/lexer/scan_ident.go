package lexer

func scanIdent(rest []byte) int {
	i := 1
	for i < len(rest) && isIdentContinue(rest[i]) {
		i++
	}
	return i
}
