package token

// Kind is the precise category of a token, decided from its full lexeme.
type Kind uint8

const (
	// Nil marks "no token could be classified". It never reaches a token stream.
	Nil Kind = iota

	// PreproInclude represents the '#include' directive.
	PreproInclude // #include
	// PreproDefine represents the '#define' directive.
	PreproDefine // #define
	// PreproUndef represents the '#undef' directive.
	PreproUndef // #undef
	// PreproIfdef represents the '#ifdef' directive.
	PreproIfdef // #ifdef
	// PreproIfndef represents the '#ifndef' directive.
	PreproIfndef // #ifndef
	// PreproIf represents the '#if' directive.
	PreproIf // #if
	// PreproElif represents the '#elif' directive.
	PreproElif // #elif
	// PreproElse represents the '#else' directive.
	PreproElse // #else
	// PreproEndif represents the '#endif' directive.
	PreproEndif // #endif
	// PreproError represents the '#error' directive.
	PreproError // #error
	// PreproPragma represents the '#pragma' directive.
	PreproPragma // #pragma
	// PreproConcat represents the token-pasting operator.
	PreproConcat // ##

	// типы
	KwBool     // _Bool
	KwChar     // char
	KwDouble   // double
	KwEnum     // enum
	KwFloat    // float
	KwInt      // int
	KwLong     // long
	KwShort    // short
	KwSigned   // signed
	KwStatic   // static
	KwStruct   // struct
	KwUnion    // union
	KwUnsigned // unsigned
	KwVoid     // void
	// квалификаторы
	KwAtomic   // _Atomic
	KwConst    // const
	KwRestrict // restrict
	KwVolatile // volatile
	// остальные
	KwAlignas      // _Alignas
	KwAlignof      // _Alignof
	KwAuto         // auto
	KwBreak        // break
	KwCase         // case
	KwComplex      // _Complex
	KwContinue     // continue
	KwDefault      // default
	KwDo           // do
	KwElse         // else
	KwExtern       // extern
	KwFor          // for
	KwGeneric      // _Generic
	KwGoto         // goto
	KwIf           // if
	KwInline       // inline
	KwImaginary    // _Imaginary
	KwNoreturn     // _Noreturn
	KwRegister     // register
	KwReturn       // return
	KwSizeof       // sizeof
	KwStaticAssert // _Static_assert
	KwSwitch       // switch
	KwThreadLocal  // _Thread_local
	KwTypedef      // typedef
	KwWhile        // while

	// NumLit represents a numeric literal (123, 1.23f, 0x1F, 10ull, 1e-10).
	NumLit
	// CharLit represents a character literal, optionally prefixed ('c', L'c').
	CharLit
	// StringLit represents a string literal, optionally prefixed ("abc", u"abc").
	StringLit

	Plus       // +
	PlusPlus   // ++
	Minus      // -
	MinusMinus // --
	Slash      // /
	Percent    // %

	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=

	EqEq   // ==
	BangEq // !=
	Lt     // <
	LtEq   // <=
	Gt     // >
	GtEq   // >=

	AndAnd // &&
	OrOr   // ||
	Bang   // !

	Tilde // ~
	Pipe  // |
	Caret // ^
	Shl   // <<
	Shr   // >>

	Dot   // .
	Arrow // ->

	// Amp and Star are unary or binary; the parser decides.
	Amp  // &
	Star // *

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Question  // ?
	Colon     // :
	Ellipsis  // ...
	Comma     // ,
	Semicolon // ;
	LineCont  // \

	// Ident represents an identifier.
	Ident
	// LineComment represents a // comment, including escaped continuations.
	LineComment
	// BlockComment represents a /* */ comment.
	BlockComment
	// Newline represents a single '\n'.
	Newline

	// KindCount is the number of kinds; it is not a kind itself.
	KindCount
)
