package token

import (
	"fmt"

	"ctruct/internal/source"
)

// Token is a classified byte span of a source buffer.
type Token struct {
	Kind Kind
	Pos  uint32 // 0-based byte offset
	Len  uint32 // byte count
}

// End returns the exclusive end offset.
func (t Token) End() uint32 { return t.Pos + t.Len }

// Lexeme returns the bytes the token spans in src. src must be the buffer
// the token was produced from.
func (t Token) Lexeme(src []byte) []byte {
	return src[t.Pos:t.End():t.End()]
}

// Text is Lexeme as a string.
func (t Token) Text(src []byte) string {
	return string(t.Lexeme(src))
}

// Span places the token in a file of a FileSet.
func (t Token) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: t.Pos, End: t.End()}
}

// String renders the token as KIND(pos,len), the notation used in fixtures.
func (t Token) String() string {
	return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Pos, t.Len)
}

// Debug renders the token as (kind-number pos len).
func Debug(t Token) string {
	return fmt.Sprintf("(%d %d %d)", uint16(t.Kind), t.Pos, t.Len)
}

// IsDirective reports whether the token is a preprocessor directive or '##'.
func (t Token) IsDirective() bool {
	return t.Kind >= PreproInclude && t.Kind <= PreproConcat
}

// IsKeyword reports whether the token is a C keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBool && t.Kind <= KwWhile
}

// IsLiteral reports whether the token is a numeric, character or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator, including '.' and '->'.
func (t Token) IsOperator() bool {
	return t.Kind >= Plus && t.Kind <= Star
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	return t.Kind >= LParen && t.Kind <= LineCont
}

// IsComment reports whether the token is a comment of either form.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
