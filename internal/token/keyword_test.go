package token

import (
	"testing"
)

func TestLookupSymbol_Keywords(t *testing.T) {
	cases := map[string]Kind{
		"int":            KwInt,
		"char":           KwChar,
		"const":          KwConst,
		"return":         KwReturn,
		"_Atomic":        KwAtomic,
		"_Generic":       KwGeneric,
		"_Static_assert": KwStaticAssert,
		"_Thread_local":  KwThreadLocal,
		"restrict":       KwRestrict,
		"sizeof":         KwSizeof,
	}

	for lexeme, want := range cases {
		got, ok := LookupSymbol(lexeme)
		if !ok {
			t.Fatalf("LookupSymbol(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupSymbol(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupSymbol_Negative(t *testing.T) {
	// регистр важен, а '.', '/' и директивы живут в других таблицах
	notSym := []string{
		"Int", "RETURN", "_bool", "bool",
		"main", "argv", "size_t",
		".", "/", "/=", "#", "##", "define",
	}
	for _, s := range notSym {
		if k, ok := LookupSymbol(s); ok {
			t.Fatalf("LookupSymbol(%q) = %v, want !ok", s, k)
		}
	}
}

func TestLookupSymbol_AllKeywordsCovered(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, k := range symbols {
		seen[k] = true
	}
	for k := KwBool; k <= KwWhile; k++ {
		if !seen[k] {
			t.Errorf("keyword %v missing from symbol table", k)
		}
	}
	for k := Plus; k <= LineCont; k++ {
		switch k {
		case Slash, SlashAssign, Dot:
			// typed by the '/' and '.' categories
			continue
		}
		if !seen[k] {
			t.Errorf("%v missing from symbol table", k)
		}
	}
}

func TestLookupDirective(t *testing.T) {
	cases := map[string]Kind{
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
	for word, want := range cases {
		got, ok := LookupDirective(word)
		if !ok || got != want {
			t.Fatalf("LookupDirective(%q) = %v, %v; want %v", word, got, ok, want)
		}
	}
	for _, word := range []string{"line", "warning", "import", "Define", ""} {
		if _, ok := LookupDirective(word); ok {
			t.Fatalf("LookupDirective(%q) returned ok=true", word)
		}
	}
}
