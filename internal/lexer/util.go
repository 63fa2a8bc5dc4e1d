package lexer

import "bytes"

// ===== Классификаторы байтов (только ASCII) =====

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

func isIdentContinue(b byte) bool { return isAlnum(b) || b == '_' }

// isBlank: пробельные символы внутри строки, '\n' сюда не входит.
func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func isOperatorByte(b byte) bool {
	switch b {
	case '!', '%', '&', '*', '+', '-', '<', '=', '>', '^', '|', '~':
		return true
	}
	return false
}

func isSpecialByte(b byte) bool {
	switch b {
	case '(', ')', ',', ':', ';', '?', '[', '\\', ']', '{', '}':
		return true
	}
	return false
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// findUnescaped returns the index of the first target byte at or after from
// that is not escaped, or -1. A byte is escaped when it is preceded by an odd
// run of escape bytes.
func findUnescaped(buf []byte, target, escape byte, from int) int {
	for i := from; i < len(buf); i++ {
		if buf[i] != target {
			continue
		}
		run := 0
		for j := i - 1; j >= 0 && buf[j] == escape; j-- {
			run++
		}
		if run%2 == 0 {
			return i
		}
	}
	return -1
}

// indexFrom returns the index of sub in buf at or after from, or -1.
func indexFrom(buf []byte, sub string, from int) int {
	if from > len(buf) {
		return -1
	}
	i := bytes.Index(buf[from:], []byte(sub))
	if i < 0 {
		return -1
	}
	return from + i
}
