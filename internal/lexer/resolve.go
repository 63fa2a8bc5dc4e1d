package lexer

import (
	"ctruct/internal/token"
)

// ResolveKind types a measured lexeme of category cat. It returns token.Nil
// for an unknown directive, an unclassifiable lexeme or an empty one.
func ResolveKind(lexeme []byte, cat Category) token.Kind {
	n := len(lexeme)
	if n == 0 {
		return token.Nil
	}
	switch cat {
	case CatNewline:
		return token.Newline
	case CatDot:
		switch {
		case n == 1:
			return token.Dot
		case string(lexeme) == "...":
			return token.Ellipsis
		}
		return token.NumLit
	case CatSlash:
		if n == 1 {
			return token.Slash
		}
		switch lexeme[1] {
		case '=':
			return token.SlashAssign
		case '/':
			return token.LineComment
		case '*':
			return token.BlockComment
		}
		return token.Nil
	case CatLiteral:
		switch lexeme[0] {
		case '"':
			return token.StringLit
		case '\'':
			return token.CharLit
		}
		return token.NumLit
	case CatPrepro:
		return resolveDirective(lexeme)
	case CatWord, CatOperator, CatSpecial:
		if k, ok := token.LookupSymbol(string(lexeme)); ok {
			return k
		}
		return token.Ident
	}
	return token.Nil
}

// resolveDirective types "#  define X" by its word; "##" is the paste operator.
func resolveDirective(lexeme []byte) token.Kind {
	if len(lexeme) == 2 && lexeme[1] == '#' {
		return token.PreproConcat
	}
	word := directiveWord(lexeme)
	if word == "" {
		return token.Nil
	}
	if k, ok := token.LookupDirective(word); ok {
		return k
	}
	return token.Nil
}

// directiveWord returns the run of letters after '#' and any blanks.
func directiveWord(lexeme []byte) string {
	i := 1
	for i < len(lexeme) && isBlank(lexeme[i]) {
		i++
	}
	start := i
	for i < len(lexeme) && isAlpha(lexeme[i]) {
		i++
	}
	return string(lexeme[start:i])
}
