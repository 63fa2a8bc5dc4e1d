package lexer

// Category is the coarse class of a token derived from its first byte.
type Category uint8

const (
	// CatNil: байт не относится ни к одной категории.
	CatNil Category = iota
	// CatNewline: '\n'.
	CatNewline
	// CatPrepro: '#', директива или оператор '##'.
	CatPrepro
	// CatDot: '.', оператор, многоточие или число вида ".5".
	CatDot
	// CatSlash: '/', деление или комментарий.
	CatSlash
	// CatWord: буква или '_', ключевое слово или идентификатор.
	CatWord
	// CatLiteral: цифра, '\'' или '"'.
	CatLiteral
	// CatOperator: один из !%&*+-<=>^|~.
	CatOperator
	// CatSpecial: один из (),:;?[\]{}.
	CatSpecial
)

var categoryNames = [...]string{
	CatNil:      "NIL",
	CatNewline:  "NEWLINE",
	CatPrepro:   "PREPRO",
	CatDot:      "OPER_OR_LITERAL_OR_SPECIAL",
	CatSlash:    "OPER_OR_COMMENT",
	CatWord:     "KEYWORD_OR_IDENTIFIER",
	CatLiteral:  "LITERAL",
	CatOperator: "OPERATOR",
	CatSpecial:  "SPECIAL",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Classify maps the first byte of a token to its Category. Order matters:
// '.' and '/' are checked before the operator set.
func Classify(b byte) Category {
	switch {
	case b == '\n':
		return CatNewline
	case b == '#':
		return CatPrepro
	case b == '.':
		return CatDot
	case b == '/':
		return CatSlash
	case isAlpha(b) || b == '_':
		return CatWord
	case isDigit(b) || b == '\'' || b == '"':
		return CatLiteral
	case isOperatorByte(b):
		return CatOperator
	case isSpecialByte(b):
		return CatSpecial
	}
	return CatNil
}
