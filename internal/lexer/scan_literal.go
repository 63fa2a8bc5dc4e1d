package lexer

// scanLiteral measures quoted and numeric literals. An unterminated quoted
// literal runs to the end of rest.
func scanLiteral(rest []byte) int {
	n := len(rest)
	if n == 1 {
		return 1
	}
	if quote := rest[0]; quote == '\'' || quote == '"' {
		closing := findUnescaped(rest, quote, '\\', 1)
		if closing < 0 {
			return n
		}
		return closing + 1
	}
	return scanNumber(rest)
}

// scanNumber extends over digits, letters, '\'' separators and '.', plus an
// exponent sign after 'e'/'E' unless the number is hexadecimal-looking there.
func scanNumber(rest []byte) int {
	n := len(rest)
	i := 1
	for {
		for i < n && isNumberContinue(rest[i]) {
			i++
		}
		if i < n && isExponentSign(rest, i) {
			i++
			continue
		}
		return i
	}
}

func isNumberContinue(b byte) bool {
	return isAlnum(b) || b == '\'' || b == '.'
}

// isExponentSign reports whether rest[i] is the sign of "1e-5"-style
// exponent. "0x1e-3" is not: 'e' there is a hex digit.
func isExponentSign(rest []byte, i int) bool {
	if rest[i] != '+' && rest[i] != '-' {
		return false
	}
	if i < 2 || toLower(rest[i-1]) != 'e' {
		return false
	}
	return toLower(rest[i-2]) != 'x'
}
