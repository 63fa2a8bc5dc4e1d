// Package lexer splits C source bytes into tokens in two passes.
//
// Pass 1 walks the buffer: intra-line blanks are skipped, the first byte of
// the next token is classified into a coarse Category (Classify), the token
// is measured (TokenLen) and typed (ResolveKind). A token typed token.Nil
// ends the scan and everything after it is left untokenized.
//
// Pass 2 (MergePrefixes) folds an encoding prefix identifier L, u or U into a
// directly following character or string literal.
//
// Tokenize is the plain, silent entry point. Lexer wraps the same passes and
// additionally reports lenient conditions (unterminated literals, stopped
// scans) through a diag.Reporter.
//
// The lexer never reads past len(src) and never allocates shared state, so
// independent buffers may be tokenized concurrently.
package lexer
