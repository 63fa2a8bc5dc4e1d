package lexer_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"ctruct/internal/lexer"
	"ctruct/internal/source"
	"ctruct/internal/testkit"
	"ctruct/internal/token"
)

type want struct {
	kind token.Kind
	pos  uint32
	len  uint32
}

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	src, err := source.LoadText(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return src
}

func expectTokens(t *testing.T, src []byte, got []token.Token, exp []want) {
	t.Helper()
	if len(got) != len(exp) {
		t.Fatalf("expected %d tokens, got %d: %v", len(exp), len(got), got)
	}
	for i, w := range exp {
		g := got[i]
		if g.Kind != w.kind || g.Pos != w.pos || g.Len != w.len {
			t.Errorf("token %d: got %v %q, want %s(%d,%d)", i, g, g.Text(src), w.kind, w.pos, w.len)
		}
	}
}

func TestFixtureMain(t *testing.T) {
	src := loadFixture(t, "main.c")
	expectTokens(t, src, lexer.Tokenize(src), []want{
		{token.KwInt, 0, 3},
		{token.Ident, 4, 4},
		{token.LParen, 8, 1},
		{token.KwInt, 9, 3},
		{token.Ident, 13, 4},
		{token.Comma, 17, 1},
		{token.KwChar, 19, 4},
		{token.KwConst, 24, 5},
		{token.Star, 30, 1},
		{token.Star, 31, 1},
		{token.Ident, 32, 4},
		{token.RParen, 36, 1},
		{token.LBrace, 38, 1},
		{token.Newline, 39, 1},
		{token.KwReturn, 42, 6},
		{token.NumLit, 49, 1},
		{token.Semicolon, 50, 1},
		{token.Newline, 51, 1},
		{token.RBrace, 52, 1},
		{token.Newline, 53, 1},
	})
}

func TestFixturePrepro(t *testing.T) {
	src := loadFixture(t, "prepro.c")
	expectTokens(t, src, lexer.Tokenize(src), []want{
		{token.PreproInclude, 0, 18},
		{token.Newline, 18, 1},
		{token.LineComment, 19, 22},
		{token.Newline, 41, 1},
		{token.PreproDefine, 42, 16},
		{token.Newline, 58, 1},
		{token.PreproDefine, 59, 27},
		{token.Newline, 86, 1},
	})
}

func TestFixtureCharLiterals(t *testing.T) {
	src := loadFixture(t, "char_literals.c")
	var lits []token.Token
	for _, tok := range lexer.Tokenize(src) {
		if tok.Kind == token.CharLit {
			lits = append(lits, tok)
		}
	}
	expectTokens(t, src, lits, []want{
		{token.CharLit, 9, 3},
		{token.CharLit, 23, 4},
		{token.CharLit, 38, 4},
		{token.CharLit, 53, 4},
	})
	if got := len(lexer.Tokenize(src)); got != 24 {
		t.Errorf("expected 24 tokens after prefix merge, got %d", got)
	}
}

func TestFixtureStringLiterals(t *testing.T) {
	src := loadFixture(t, "string_literals.c")
	expectTokens(t, src, lexer.Tokenize(src), []want{
		{token.KwChar, 0, 4}, {token.Star, 5, 1}, {token.Ident, 6, 1}, {token.Assign, 8, 1},
		{token.StringLit, 10, 2}, {token.Semicolon, 12, 1}, {token.Newline, 13, 1},
		{token.KwChar, 14, 4}, {token.Star, 19, 1}, {token.Ident, 20, 1}, {token.Assign, 22, 1},
		{token.StringLit, 24, 4}, {token.Semicolon, 28, 1}, {token.Newline, 29, 1},
		{token.KwChar, 30, 4}, {token.Star, 35, 1}, {token.Ident, 36, 1}, {token.Assign, 38, 1},
		{token.StringLit, 40, 5}, {token.Semicolon, 45, 1}, {token.Newline, 46, 1},
		{token.KwChar, 47, 4}, {token.Star, 52, 1}, {token.Ident, 53, 1}, {token.Assign, 55, 1},
		{token.StringLit, 57, 6}, {token.Semicolon, 63, 1}, {token.Newline, 64, 1},
	})
}

func TestTokenizeCases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []want
	}{
		{"prefix merge", `L'x'`, []want{{token.CharLit, 0, 4}}},
		{"two prefixed literals", `L'a'U"b"`, []want{{token.CharLit, 0, 4}, {token.StringLit, 4, 4}}},
		{"u8 not merged", `u8"s"`, []want{{token.Ident, 0, 2}, {token.StringLit, 2, 3}}},
		{"detached prefix", `L "s"`, []want{{token.Ident, 0, 1}, {token.StringLit, 2, 3}}},
		{"exponent", "1e-10", []want{{token.NumLit, 0, 5}}},
		{"exponent upper with suffix", "1.5E+3f", []want{{token.NumLit, 0, 7}}},
		{"hex no exponent", "0x1-3", []want{{token.NumLit, 0, 3}, {token.Minus, 3, 1}, {token.NumLit, 4, 1}}},
		{"hex digit e", "0xE+1", []want{{token.NumLit, 0, 3}, {token.Plus, 3, 1}, {token.NumLit, 4, 1}}},
		{"digit separators", "1'000'000", []want{{token.NumLit, 0, 9}}},
		{"escaped continuation", "#define X \\\n 1\n", []want{{token.PreproDefine, 0, 14}, {token.Newline, 14, 1}}},
		{"directive with comment", "#define X /* c\n d */ y\nz", []want{
			{token.PreproDefine, 0, 20}, {token.Ident, 21, 1}, {token.Newline, 22, 1}, {token.Ident, 23, 1},
		}},
		{"directive with slash star slash", "#define X /*/ y */\nz", []want{
			{token.PreproDefine, 0, 13}, {token.Ident, 14, 1}, {token.Star, 16, 1}, {token.Slash, 17, 1},
			{token.Newline, 18, 1}, {token.Ident, 19, 1},
		}},
		{"spaced directive", "#  pragma once", []want{{token.PreproPragma, 0, 14}}},
		{"paste operator", "a ## b", []want{{token.Ident, 0, 1}, {token.PreproConcat, 2, 2}, {token.Ident, 5, 1}}},
		{"shifts", "a<<=b>>c", []want{
			{token.Ident, 0, 1}, {token.ShlAssign, 1, 3}, {token.Ident, 4, 1}, {token.Shr, 5, 2}, {token.Ident, 7, 1},
		}},
		{"arrow and decrement", "x->y--", []want{
			{token.Ident, 0, 1}, {token.Arrow, 1, 2}, {token.Ident, 3, 1}, {token.MinusMinus, 4, 2},
		}},
		{"maximal munch", "&&&", []want{{token.AndAnd, 0, 2}, {token.Amp, 2, 1}}},
		{"tilde is single", "~=", []want{{token.Tilde, 0, 1}, {token.Assign, 1, 1}}},
		{"percent assign", "%=%", []want{{token.PercentAssign, 0, 2}, {token.Percent, 2, 1}}},
		{"ellipsis", "...", []want{{token.Ellipsis, 0, 3}}},
		{"dot fraction", ".5f+1", []want{{token.NumLit, 0, 3}, {token.Plus, 3, 1}, {token.NumLit, 4, 1}}},
		{"member dot", "a.b", []want{{token.Ident, 0, 1}, {token.Dot, 1, 1}, {token.Ident, 2, 1}}},
		{"division", "a/b/=c", []want{
			{token.Ident, 0, 1}, {token.Slash, 1, 1}, {token.Ident, 2, 1}, {token.SlashAssign, 3, 2}, {token.Ident, 5, 1},
		}},
		{"trailing slash", "int a; /", []want{
			{token.KwInt, 0, 3}, {token.Ident, 4, 1}, {token.Semicolon, 5, 1}, {token.Slash, 7, 1},
		}},
		{"block comment", "/* a */ b", []want{{token.BlockComment, 0, 7}, {token.Ident, 8, 1}}},
		{"block comment slash star slash", "/*/ x */", []want{
			{token.BlockComment, 0, 3}, {token.Ident, 4, 1}, {token.Star, 6, 1}, {token.Slash, 7, 1},
		}},
		{"line comment continuation", "// c \\\n still\nx", []want{
			{token.LineComment, 0, 13}, {token.Newline, 13, 1}, {token.Ident, 14, 1},
		}},
		{"escaped backslash char", `'\\'`, []want{{token.CharLit, 0, 4}}},
		{"unterminated string", `"abc`, []want{{token.StringLit, 0, 4}}},
		{"unterminated comment", "/* open", []want{{token.BlockComment, 0, 7}}},
		{"line continuation special", "a\\\nb", []want{
			{token.Ident, 0, 1}, {token.LineCont, 1, 1}, {token.Newline, 2, 1}, {token.Ident, 3, 1},
		}},
		{"blanks skipped", "\tint\v\fx", []want{{token.KwInt, 1, 3}, {token.Ident, 6, 1}}},
		{"keyword case sensitive", "Int _Bool", []want{{token.Ident, 0, 3}, {token.KwBool, 4, 5}}},
		{"empty", "", nil},
		{"only blanks", "  \t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			expectTokens(t, src, lexer.Tokenize(src), tt.want)
		})
	}
}

func TestTokenizeTruncation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []want
	}{
		{"unknown char", "a @ b", []want{{token.Ident, 0, 1}}},
		{"nul byte", "x\x00y", []want{{token.Ident, 0, 1}}},
		{"unknown directive", "#warning x\nint", nil},
		{"lone hash", "#", nil},
		{"non-ascii", "int \xd0\xb9;", []want{{token.KwInt, 0, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			expectTokens(t, src, lexer.Tokenize(src), tt.want)
		})
	}
}

// Every byte belongs to exactly one pass-1 token or is an intra-line blank,
// and pass 2 only joins adjacent prefix/literal pairs.
func TestCoverageProperty(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		src := loadFixture(t, e.Name())
		res := lexer.New(&source.File{Content: src}, lexer.Options{NoMerge: true}).Run()
		if res.Truncated {
			t.Fatalf("%s: unexpected truncation at %d", e.Name(), res.Consumed)
		}
		if err := testkit.CheckTokenInvariants(src, res.Tokens, res.Consumed); err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
		merged := lexer.MergePrefixes(src, res.Tokens)
		if err := testkit.CheckMergeConsistency(res.Tokens, merged); err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	src := loadFixture(t, "prepro.c")
	if !slices.Equal(lexer.Tokenize(src), lexer.Tokenize(src)) {
		t.Fatal("tokenizing the same buffer twice differs")
	}
}

func TestLexemeMatchesKind(t *testing.T) {
	src := loadFixture(t, "string_literals.c")
	for _, tok := range lexer.Tokenize(src) {
		lit := tok.Lexeme(src)
		switch tok.Kind {
		case token.StringLit:
			if lit[0] != '"' || lit[len(lit)-1] != '"' {
				t.Errorf("string literal %q not quoted", lit)
			}
		case token.Newline:
			if string(lit) != "\n" {
				t.Errorf("newline lexeme %q", lit)
			}
		}
	}
}

func TestMergePrefixesKeepsInput(t *testing.T) {
	src := []byte(`u'c'`)
	pass1 := []token.Token{{Kind: token.Ident, Pos: 0, Len: 1}, {Kind: token.CharLit, Pos: 1, Len: 3}}
	merged := lexer.MergePrefixes(src, pass1)
	if len(merged) != 1 || merged[0] != (token.Token{Kind: token.CharLit, Pos: 0, Len: 4}) {
		t.Fatalf("unexpected merge result %v", merged)
	}
	if len(pass1) != 2 || pass1[0].Kind != token.Ident {
		t.Fatal("input slice was modified")
	}
	if got := lexer.MergePrefixes(src, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
