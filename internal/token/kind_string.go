package token

import "strconv"

// Names follow the upper-case category naming used in fixtures and dumps.
var kindNames = [KindCount]string{
	Nil: "NIL",

	PreproInclude: "PREPRO_DIR_INCLUDE",
	PreproDefine:  "PREPRO_DIR_DEFINE",
	PreproUndef:   "PREPRO_DIR_UNDEF",
	PreproIfdef:   "PREPRO_DIR_IFDEF",
	PreproIfndef:  "PREPRO_DIR_IFNDEF",
	PreproIf:      "PREPRO_DIR_IF",
	PreproElif:    "PREPRO_DIR_ELIF",
	PreproElse:    "PREPRO_DIR_ELSE",
	PreproEndif:   "PREPRO_DIR_ENDIF",
	PreproError:   "PREPRO_DIR_ERROR",
	PreproPragma:  "PREPRO_DIR_PRAGMA",
	PreproConcat:  "PREPRO_OPER_CONCAT",

	KwBool:         "KEYWORD_BOOL",
	KwChar:         "KEYWORD_CHAR",
	KwDouble:       "KEYWORD_DOUBLE",
	KwEnum:         "KEYWORD_ENUM",
	KwFloat:        "KEYWORD_FLOAT",
	KwInt:          "KEYWORD_INT",
	KwLong:         "KEYWORD_LONG",
	KwShort:        "KEYWORD_SHORT",
	KwSigned:       "KEYWORD_SIGNED",
	KwStatic:       "KEYWORD_STATIC",
	KwStruct:       "KEYWORD_STRUCT",
	KwUnion:        "KEYWORD_UNION",
	KwUnsigned:     "KEYWORD_UNSIGNED",
	KwVoid:         "KEYWORD_VOID",
	KwAtomic:       "KEYWORD_ATOMIC",
	KwConst:        "KEYWORD_CONST",
	KwRestrict:     "KEYWORD_RESTRICT",
	KwVolatile:     "KEYWORD_VOLATILE",
	KwAlignas:      "KEYWORD_ALIGNAS",
	KwAlignof:      "KEYWORD_ALIGNOF",
	KwAuto:         "KEYWORD_AUTO",
	KwBreak:        "KEYWORD_BREAK",
	KwCase:         "KEYWORD_CASE",
	KwComplex:      "KEYWORD_COMPLEX",
	KwContinue:     "KEYWORD_CONTINUE",
	KwDefault:      "KEYWORD_DEFAULT",
	KwDo:           "KEYWORD_DO",
	KwElse:         "KEYWORD_ELSE",
	KwExtern:       "KEYWORD_EXTERN",
	KwFor:          "KEYWORD_FOR",
	KwGeneric:      "KEYWORD_GENERIC",
	KwGoto:         "KEYWORD_GOTO",
	KwIf:           "KEYWORD_IF",
	KwInline:       "KEYWORD_INLINE",
	KwImaginary:    "KEYWORD_IMAGINARY",
	KwNoreturn:     "KEYWORD_NORETURN",
	KwRegister:     "KEYWORD_REGISTER",
	KwReturn:       "KEYWORD_RETURN",
	KwSizeof:       "KEYWORD_SIZEOF",
	KwStaticAssert: "KEYWORD_STATICASSERT",
	KwSwitch:       "KEYWORD_SWITCH",
	KwThreadLocal:  "KEYWORD_THREADLOCAL",
	KwTypedef:      "KEYWORD_TYPEDEF",
	KwWhile:        "KEYWORD_WHILE",

	NumLit:    "LITERAL_NUM",
	CharLit:   "LITERAL_CHAR",
	StringLit: "LITERAL_STR",

	Plus:          "OPER_PLUS",
	PlusPlus:      "OPER_PLUSPLUS",
	Minus:         "OPER_MINUS",
	MinusMinus:    "OPER_MINUSMINUS",
	Slash:         "OPER_DIV",
	Percent:       "OPER_MOD",
	Assign:        "OPER_ASSIGN",
	PlusAssign:    "OPER_ASSIGN_ADD",
	MinusAssign:   "OPER_ASSIGN_SUB",
	StarAssign:    "OPER_ASSIGN_MULT",
	SlashAssign:   "OPER_ASSIGN_DIV",
	PercentAssign: "OPER_ASSIGN_MOD",
	ShlAssign:     "OPER_ASSIGN_BITSHIFTLEFT",
	ShrAssign:     "OPER_ASSIGN_BITSHIFTRIGHT",
	AmpAssign:     "OPER_ASSIGN_BITAND",
	PipeAssign:    "OPER_ASSIGN_BITOR",
	CaretAssign:   "OPER_ASSIGN_BITXOR",
	EqEq:          "OPER_REL_EQ",
	BangEq:        "OPER_REL_NOTEQ",
	Lt:            "OPER_REL_LESSTHAN",
	LtEq:          "OPER_REL_LESSTHANEQ",
	Gt:            "OPER_REL_GREATERTHAN",
	GtEq:          "OPER_REL_GREATERTHANEQ",
	AndAnd:        "OPER_LOGIC_AND",
	OrOr:          "OPER_LOGIC_OR",
	Bang:          "OPER_LOGIC_NOT",
	Tilde:         "OPER_BITWISE_NOT",
	Pipe:          "OPER_BITWISE_OR",
	Caret:         "OPER_BITWISE_XOR",
	Shl:           "OPER_BITWISE_SHIFTLEFT",
	Shr:           "OPER_BITWISE_SHIFTRIGHT",
	Dot:           "OPER_DOT",
	Arrow:         "OPER_ARROW",
	Amp:           "OPER_AMPERSAND",
	Star:          "OPER_STAR",

	LParen:    "SPECIAL_PAREN_OPEN",
	RParen:    "SPECIAL_PAREN_CLOSE",
	LBrace:    "SPECIAL_BRACE_OPEN",
	RBrace:    "SPECIAL_BRACE_CLOSE",
	LBracket:  "SPECIAL_BRACKET_OPEN",
	RBracket:  "SPECIAL_BRACKET_CLOSE",
	Question:  "SPECIAL_QUESTION",
	Colon:     "SPECIAL_COLON",
	Ellipsis:  "SPECIAL_ELLIPSES",
	Comma:     "SPECIAL_COMMA",
	Semicolon: "SPECIAL_SEMICOLON",
	LineCont:  "SPECIAL_LINE_CONT",

	Ident:        "IDENTIFIER",
	LineComment:  "COMMENT_SINGLELINE",
	BlockComment: "COMMENT_MULTILINE",
	Newline:      "NEWLINE",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind is the inverse of String for valid kinds.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, KindCount)
	for k := Nil; k < KindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()
