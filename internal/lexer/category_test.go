package lexer

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"\n", CatNewline},
		{"#", CatPrepro},
		{".", CatDot},
		{"/", CatSlash},
		{"aZ_", CatWord},
		{"09'\"", CatLiteral},
		{"!%&*+-<=>^|~", CatOperator},
		{"(),:;?[\\]{}", CatSpecial},
		{"@$` \t\r\x00\x7f\xff", CatNil},
	}
	for _, tt := range tests {
		for i := 0; i < len(tt.in); i++ {
			if got := Classify(tt.in[i]); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.in[i], got, tt.want)
			}
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CatDot.String() != "OPER_OR_LITERAL_OR_SPECIAL" || CatSlash.String() != "OPER_OR_COMMENT" {
		t.Errorf("unexpected names %s %s", CatDot, CatSlash)
	}
	if Category(200).String() != "Category(?)" {
		t.Errorf("out of range name %s", Category(200))
	}
}

func TestFindUnescaped(t *testing.T) {
	tests := []struct {
		buf  string
		from int
		want int
	}{
		{`"abc"`, 1, 4},
		{`"a\"b"`, 1, 5},
		{`"a\\"`, 1, 4},
		{`"a\\\"x`, 1, -1},
		{`""`, 1, 1},
		{`"`, 1, -1},
		{`x"`, 5, -1},
	}
	for _, tt := range tests {
		if got := findUnescaped([]byte(tt.buf), '"', '\\', tt.from); got != tt.want {
			t.Errorf("findUnescaped(%q, %d) = %d, want %d", tt.buf, tt.from, got, tt.want)
		}
	}
}

func TestTokenLen(t *testing.T) {
	tests := []struct {
		cat  Category
		rest string
		want int
	}{
		{CatNewline, "\nabc", 1},
		{CatSpecial, "((", 1},
		{CatPrepro, "#", 1},
		{CatPrepro, "##x", 2},
		{CatPrepro, "#if X", 5},
		{CatPrepro, "#if A \\\\\nB", 8},
		{CatDot, ".", 1},
		{CatDot, "..x", 1},
		{CatDot, ".25F;", 4},
		{CatSlash, "/", 1},
		{CatSlash, "/x", 1},
		{CatSlash, "// x", 4},
		{CatSlash, "/**/x", 4},
		{CatWord, "a1_b-", 4},
		{CatOperator, "-", 1},
		{CatOperator, "->x", 2},
		{CatOperator, ">>=", 3},
		{CatOperator, "<<", 2},
		{CatOperator, "<-", 1},
		{CatOperator, "|=", 2},
		{CatOperator, "!!", 1},
		{CatLiteral, "7", 1},
		{CatLiteral, "0x1Fu;", 5},
		{CatLiteral, "1e+", 3},
		{CatLiteral, "'a'b", 3},
		{CatNil, "@", 0},
		{CatWord, "", 0},
	}
	for _, tt := range tests {
		if got := TokenLen(tt.cat, []byte(tt.rest)); got != tt.want {
			t.Errorf("TokenLen(%s, %q) = %d, want %d", tt.cat, tt.rest, got, tt.want)
		}
	}
}

func TestExtractAtEnd(t *testing.T) {
	tok, cat := Extract([]byte("a   "), 1)
	if tok.Len != 0 || tok.Pos != 4 || cat != CatNil {
		t.Fatalf("expected empty sentinel at end, got %v %s", tok, cat)
	}
	tok, cat = Extract([]byte("a  b"), 1)
	if tok.Pos != 3 || tok.Len != 1 || cat != CatWord {
		t.Fatalf("expected identifier after blanks, got %v %s", tok, cat)
	}
}
