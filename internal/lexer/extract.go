package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"ctruct/internal/token"
)

// Extract skips blanks from pos and returns the next token with its category.
// At the end of src it returns a token.Nil token of length 0 at len(src).
// A token.Nil token with a non-zero length is an unknown directive.
func Extract(src []byte, pos uint32) (token.Token, Category) {
	cur := NewCursor(src)
	cur.Advance(pos)
	return extract(&cur)
}

func extract(cur *Cursor) (token.Token, Category) {
	cur.SkipBlank()
	if cur.EOF() {
		return token.Token{Kind: token.Nil, Pos: cur.Off}, CatNil
	}

	rest := cur.Rest()
	cat := Classify(rest[0])
	n := TokenLen(cat, rest)
	length, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("token length overflow: %w", err))
	}
	return token.Token{
		Kind: ResolveKind(rest[:n], cat),
		Pos:  cur.Off,
		Len:  length,
	}, cat
}
