package lexer

// scanDot: ".", "..." or a fraction such as ".5f".
func scanDot(rest []byte) int {
	n := len(rest)
	if n == 1 {
		return 1
	}
	if n >= 3 && rest[1] == '.' && rest[2] == '.' {
		return 3
	}
	i := 1
	for i < n && isDigit(rest[i]) {
		i++
	}
	if i < n && (rest[i] == 'f' || rest[i] == 'F') {
		i++
	}
	return i
}

// scanSlash: "/", "/=", a line comment or a block comment.
func scanSlash(rest []byte) int {
	n := len(rest)
	if n == 1 {
		return 1
	}
	switch rest[1] {
	case '=':
		return 2
	case '/':
		// "\\\n" продолжает комментарий на следующей строке
		for i := 2; i < n; i++ {
			if rest[i] == '\n' && rest[i-1] != '\\' {
				return i
			}
		}
		return n
	case '*':
		// "*/" ищется с первого байта: "/*/" уже закрыт
		if closing := indexFrom(rest, "*/", 0); closing >= 0 {
			return closing + 2
		}
		return n
	}
	return 1
}

// scanOperator applies maximal munch over the C operator set.
func scanOperator(rest []byte) int {
	n := len(rest)
	first := rest[0]
	if n == 1 || first == '~' {
		return 1
	}
	second := rest[1]
	switch first {
	case '+':
		if second == '+' || second == '=' {
			return 2
		}
	case '-':
		if second == '-' || second == '=' || second == '>' {
			return 2
		}
	case '*', '%', '=', '!', '^':
		if second == '=' {
			return 2
		}
	case '<', '>':
		if second == '=' {
			return 2
		}
		if second == first {
			if n >= 3 && rest[2] == '=' {
				return 3 // "<<=" / ">>="
			}
			return 2
		}
	case '&', '|':
		if second == first || second == '=' {
			return 2
		}
	}
	return 1
}
