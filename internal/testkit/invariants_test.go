package testkit

import (
	"strings"
	"testing"

	"ctruct/internal/token"
)

func tk(k token.Kind, pos, n uint32) token.Token {
	return token.Token{Kind: k, Pos: pos, Len: n}
}

func TestCheckTokenInvariants(t *testing.T) {
	src := []byte("a  +\tb\n")
	good := []token.Token{
		tk(token.Ident, 0, 1),
		tk(token.Plus, 3, 1),
		tk(token.Ident, 5, 1),
		tk(token.Newline, 6, 1),
	}
	if err := CheckTokenInvariants(src, good, 7); err != nil {
		t.Fatalf("valid stream rejected: %v", err)
	}

	cases := []struct {
		name     string
		toks     []token.Token
		consumed uint32
		wantErr  string
	}{
		{"consumed past end", good, 8, "beyond content"},
		{"nil kind", []token.Token{tk(token.Nil, 0, 1)}, 7, "invalid kind"},
		{"empty", []token.Token{tk(token.Ident, 0, 0)}, 7, "is empty"},
		{"overlap", []token.Token{tk(token.Ident, 0, 2), tk(token.Ident, 1, 1)}, 7, "overlaps"},
		{"past consumed", []token.Token{tk(token.Ident, 0, 1)}, 0, "past consumed"},
		{"gap", []token.Token{tk(token.Ident, 0, 1), tk(token.Ident, 5, 1)}, 6, "non-blank"},
		{"trailing gap", []token.Token{tk(token.Ident, 0, 1)}, 7, "after last token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTokenInvariants(src, tc.toks, tc.consumed)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err=%v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestCheckMergeConsistency(t *testing.T) {
	raw := []token.Token{
		tk(token.Ident, 0, 1),     // L
		tk(token.StringLit, 1, 3), // "x"
		tk(token.Ident, 5, 1),
	}
	merged := []token.Token{
		tk(token.StringLit, 0, 4),
		tk(token.Ident, 5, 1),
	}
	if err := CheckMergeConsistency(raw, merged); err != nil {
		t.Fatalf("valid merge rejected: %v", err)
	}
	if err := CheckMergeConsistency(raw, raw); err != nil {
		t.Fatalf("identity rejected: %v", err)
	}

	bad := []token.Token{tk(token.StringLit, 0, 3), tk(token.Ident, 5, 1)}
	if err := CheckMergeConsistency(raw, bad); err == nil {
		t.Fatalf("wrong span accepted")
	}
	if err := CheckMergeConsistency(raw, merged[:1]); err == nil {
		t.Fatalf("missing token accepted")
	}
	gap := []token.Token{tk(token.Ident, 0, 1), tk(token.StringLit, 2, 3)}
	if err := CheckMergeConsistency(gap, []token.Token{tk(token.StringLit, 0, 5)}); err == nil {
		t.Fatalf("non-adjacent merge accepted")
	}
}
