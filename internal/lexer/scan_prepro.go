package lexer

// scanPrepro measures a directive: up to the first unescaped newline, or
// through a block comment that opens before that newline.
func scanPrepro(rest []byte) int {
	n := len(rest)
	if n == 1 {
		return 1
	}
	if rest[1] == '#' {
		return 2 // "##"
	}

	end := findUnescaped(rest, '\n', '\\', 0)
	if end < 0 {
		end = n
	}
	// "#define X /* ...\n ... */": директива тянется до конца комментария
	if open := indexFrom(rest, "/*", 0); open >= 0 && open < end {
		if closing := indexFrom(rest, "*/", 0); closing >= 0 {
			return closing + 2
		}
		return n
	}
	return end
}
