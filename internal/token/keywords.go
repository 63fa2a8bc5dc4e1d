package token

// symbols maps the exact text of keywords, operators and punctuation to
// their kind. Tokens starting with '.', '/' or '#' are typed elsewhere.
var symbols = map[string]Kind{
	"auto":           KwAuto,
	"break":          KwBreak,
	"case":           KwCase,
	"char":           KwChar,
	"const":          KwConst,
	"continue":       KwContinue,
	"default":        KwDefault,
	"do":             KwDo,
	"double":         KwDouble,
	"else":           KwElse,
	"enum":           KwEnum,
	"extern":         KwExtern,
	"float":          KwFloat,
	"for":            KwFor,
	"goto":           KwGoto,
	"if":             KwIf,
	"inline":         KwInline,
	"int":            KwInt,
	"long":           KwLong,
	"register":       KwRegister,
	"restrict":       KwRestrict,
	"return":         KwReturn,
	"short":          KwShort,
	"signed":         KwSigned,
	"sizeof":         KwSizeof,
	"static":         KwStatic,
	"struct":         KwStruct,
	"switch":         KwSwitch,
	"typedef":        KwTypedef,
	"union":          KwUnion,
	"unsigned":       KwUnsigned,
	"void":           KwVoid,
	"volatile":       KwVolatile,
	"while":          KwWhile,
	"_Alignas":       KwAlignas,
	"_Alignof":       KwAlignof,
	"_Atomic":        KwAtomic,
	"_Bool":          KwBool,
	"_Complex":       KwComplex,
	"_Generic":       KwGeneric,
	"_Imaginary":     KwImaginary,
	"_Noreturn":      KwNoreturn,
	"_Static_assert": KwStaticAssert,
	"_Thread_local":  KwThreadLocal,

	"+":   Plus,
	"++":  PlusPlus,
	"-":   Minus,
	"--":  MinusMinus,
	"%":   Percent,
	"=":   Assign,
	"+=":  PlusAssign,
	"-=":  MinusAssign,
	"*=":  StarAssign,
	"%=":  PercentAssign,
	"==":  EqEq,
	"!=":  BangEq,
	"<":   Lt,
	"<=":  LtEq,
	">":   Gt,
	">=":  GtEq,
	"&&":  AndAnd,
	"||":  OrOr,
	"!":   Bang,
	"~":   Tilde,
	"&=":  AmpAssign,
	"|":   Pipe,
	"|=":  PipeAssign,
	"^":   Caret,
	"^=":  CaretAssign,
	"<<":  Shl,
	"<<=": ShlAssign,
	">>":  Shr,
	">>=": ShrAssign,
	"->":  Arrow,
	"&":   Amp,
	"*":   Star,

	"(":   LParen,
	")":   RParen,
	"{":   LBrace,
	"}":   RBrace,
	"[":   LBracket,
	"]":   RBracket,
	"?":   Question,
	":":   Colon,
	"...": Ellipsis,
	",":   Comma,
	";":   Semicolon,
	"\\":  LineCont,
}

// directives maps the word following '#' to its directive kind.
var directives = map[string]Kind{
	"include": PreproInclude,
	"define":  PreproDefine,
	"undef":   PreproUndef,
	"ifdef":   PreproIfdef,
	"ifndef":  PreproIfndef,
	"if":      PreproIf,
	"elif":    PreproElif,
	"else":    PreproElse,
	"endif":   PreproEndif,
	"error":   PreproError,
	"pragma":  PreproPragma,
}

// LookupSymbol возвращает kind для ключевого слова, оператора или пунктуации.
// Lookup is case-sensitive: "Int" is not a keyword.
func LookupSymbol(text string) (Kind, bool) {
	k, ok := symbols[text]
	return k, ok
}

// LookupDirective resolves a directive word such as "define" (without '#').
func LookupDirective(word string) (Kind, bool) {
	k, ok := directives[word]
	return k, ok
}
