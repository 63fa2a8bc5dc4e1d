package lexer

import (
	"ctruct/internal/token"
)

// Tokenize runs both passes over src. Scanning stops silently at the first
// byte that cannot be classified or at an unknown directive; use Lexer to
// learn whether that happened.
func Tokenize(src []byte) []token.Token {
	toks, _ := collect(src, nil)
	return MergePrefixes(src, toks)
}

// collect is pass 1. visit, if set, sees every extracted token including the
// terminating token.Nil one. It returns the tokens and the offset where the
// scan ended.
func collect(src []byte, visit func(tok token.Token, cat Category)) ([]token.Token, uint32) {
	cur := NewCursor(src)
	// грубая оценка: в C токен в среднем ~4 байта
	toks := make([]token.Token, 0, len(src)/4+1)
	for !cur.EOF() {
		tok, cat := extract(&cur)
		if visit != nil {
			visit(tok, cat)
		}
		if tok.Kind == token.Nil {
			break
		}
		toks = append(toks, tok)
		cur.Advance(tok.Len)
	}
	return toks, cur.Off
}

// MergePrefixes is pass 2: a char or string literal directly preceded by a
// one-byte identifier L, u or U absorbs it. Merges never chain and toks is
// not modified.
func MergePrefixes(src []byte, toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if n := len(out); n > 0 && isQuoted(tok.Kind) && isEncodingPrefix(src, out[n-1], tok) {
			prev := out[n-1]
			out[n-1] = token.Token{Kind: tok.Kind, Pos: prev.Pos, Len: prev.Len + tok.Len}
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isQuoted(k token.Kind) bool {
	return k == token.CharLit || k == token.StringLit
}

// isEncodingPrefix: prev is "L", "u" or "U" and touches lit.
func isEncodingPrefix(src []byte, prev, lit token.Token) bool {
	if prev.Kind != token.Ident || prev.Len != 1 || prev.End() != lit.Pos {
		return false
	}
	if int(prev.Pos) >= len(src) {
		return false
	}
	switch src[prev.Pos] {
	case 'L', 'u', 'U':
		return true
	}
	return false
}
