package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ctruct/internal/token"
)

// CheckTokenInvariants runs the structural invariants of a token stream:
// 1) consumed is within src and no token ends past it
// 2) every token has a real kind and a non-empty span
// 3) tokens are ordered and never overlap
// 4) every gap byte (before consumed) is an intra-line blank
func CheckTokenInvariants(src []byte, toks []token.Token, consumed uint32) error {
	lenContent, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if consumed > lenContent {
		return fmt.Errorf("consumed %d beyond content %d", consumed, lenContent)
	}

	var next uint32
	for i, tok := range toks {
		if tok.Kind == token.Nil || tok.Kind >= token.KindCount {
			return fmt.Errorf("token %d has invalid kind %v", i, tok.Kind)
		}
		if tok.Len == 0 {
			return fmt.Errorf("token %d (%v) is empty", i, tok)
		}
		if tok.Pos < next {
			return fmt.Errorf("token %d (%v) overlaps previous end %d", i, tok, next)
		}
		if uint64(tok.Pos)+uint64(tok.Len) > uint64(consumed) {
			return fmt.Errorf("token %d (%v) ends past consumed %d", i, tok, consumed)
		}
		if err := checkGap(src, next, tok.Pos); err != nil {
			return fmt.Errorf("before token %d (%v): %w", i, tok, err)
		}
		next = tok.End()
	}
	if err := checkGap(src, next, consumed); err != nil {
		return fmt.Errorf("after last token: %w", err)
	}
	return nil
}

func checkGap(src []byte, from, to uint32) error {
	for off := from; off < to; off++ {
		switch src[off] {
		case ' ', '\t', '\v', '\f':
		default:
			return fmt.Errorf("non-blank byte %q at %d", src[off], off)
		}
	}
	return nil
}

// CheckMergeConsistency checks that merged is raw with some adjacent
// (prefix, quoted literal) pairs joined. Other tokens must be untouched.
func CheckMergeConsistency(raw, merged []token.Token) error {
	i := 0
	for j, m := range merged {
		if i >= len(raw) {
			return fmt.Errorf("merged token %d (%v) has no raw counterpart", j, m)
		}
		r := raw[i]
		if r == m {
			i++
			continue
		}
		if i+1 >= len(raw) {
			return fmt.Errorf("merged token %d (%v) differs from raw %v", j, m, r)
		}
		lit := raw[i+1]
		switch {
		case r.Kind != token.Ident:
			return fmt.Errorf("merged token %d: prefix %v is not an identifier", j, r)
		case lit.Kind != token.StringLit && lit.Kind != token.CharLit:
			return fmt.Errorf("merged token %d: %v is not a quoted literal", j, lit)
		case r.End() != lit.Pos:
			return fmt.Errorf("merged token %d: prefix %v not adjacent to %v", j, r, lit)
		case m.Kind != lit.Kind || m.Pos != r.Pos || m.End() != lit.End():
			return fmt.Errorf("merged token %d (%v) is not the union of %v and %v", j, m, r, lit)
		}
		i += 2
	}
	if i != len(raw) {
		return fmt.Errorf("%d raw tokens not represented in merged stream", len(raw)-i)
	}
	return nil
}
