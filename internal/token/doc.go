// Package token defines the fine-grained lexical categories of C source and
// the Token record produced by the lexer.
// Invariants:
//   - Token carries no text; Pos/Len index into the buffer that was tokenized.
//   - Pos+Len never exceeds the length of that buffer.
//   - NIL is a sentinel and never appears in a token stream.
//   - Lookup tables are built once at init and are read-only afterwards, so
//     they are safe to share between goroutines.
package token
