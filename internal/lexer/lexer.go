package lexer

import (
	"fmt"

	"ctruct/internal/diag"
	"ctruct/internal/source"
	"ctruct/internal/token"
)

// Result is the outcome of Lexer.Run.
type Result struct {
	Tokens []token.Token
	// Consumed is the offset where scanning ended, len(src) unless truncated.
	Consumed uint32
	// Truncated reports that an unclassifiable byte or unknown directive
	// stopped the scan before the end of the file.
	Truncated bool
}

// Lexer tokenizes one source file and reports lenient conditions.
type Lexer struct {
	file *source.File
	opts Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, opts: opts}
}

// Run tokenizes the whole file. The tokens are the same as Tokenize
// returns for the file content (unless Options.NoMerge is set).
func (lx *Lexer) Run() Result {
	src := lx.file.Content
	toks, off := collect(src, lx.inspect)
	if !lx.opts.NoMerge {
		toks = MergePrefixes(src, toks)
	}
	return Result{
		Tokens:    toks,
		Consumed:  off,
		Truncated: int(off) < len(src),
	}
}

// inspect reports diagnostics for one pass-1 token.
func (lx *Lexer) inspect(tok token.Token, cat Category) {
	if lx.opts.Reporter == nil {
		return
	}
	src := lx.file.Content
	switch tok.Kind {
	case token.Nil:
		if int(tok.Pos) >= len(src) {
			return // обычный конец файла
		}
		if cat == CatPrepro {
			word := directiveWord(tok.Lexeme(src))
			diag.ReportError(lx.opts.Reporter, diag.LexUnknownDirective, tok.Span(lx.file.ID),
				fmt.Sprintf("unknown preprocessor directive '#%s', tokenization stopped", word)).
				WithNote(lx.restSpan(tok.Pos), "the rest of the file is not tokenized").
				Emit()
			return
		}
		sp := source.Span{File: lx.file.ID, Start: tok.Pos, End: tok.Pos + 1}
		diag.ReportError(lx.opts.Reporter, diag.LexUnknownChar, sp,
			fmt.Sprintf("unknown character %s, tokenization stopped", quoteByte(src[tok.Pos]))).
			WithNote(lx.restSpan(tok.Pos), "the rest of the file is not tokenized").
			Emit()
	case token.StringLit, token.CharLit:
		lit := tok.Lexeme(src)
		if len(lit) >= 2 && findUnescaped(lit, lit[0], '\\', 1) == len(lit)-1 {
			return
		}
		code, what := diag.LexUnterminatedString, "string literal"
		if tok.Kind == token.CharLit {
			code, what = diag.LexUnterminatedChar, "character literal"
		}
		diag.ReportWarning(lx.opts.Reporter, code, tok.Span(lx.file.ID), "unterminated "+what).
			WithFix("insert closing quote", diag.FixEdit{
				Span:    source.Span{File: lx.file.ID, Start: tok.End(), End: tok.End()},
				NewText: string(lit[0]),
			}).
			Emit()
	case token.BlockComment:
		lit := tok.Lexeme(src)
		if len(lit) >= 3 && lit[len(lit)-2] == '*' && lit[len(lit)-1] == '/' {
			return
		}
		diag.ReportWarning(lx.opts.Reporter, diag.LexUnterminatedBlockComment, tok.Span(lx.file.ID),
			"unterminated block comment").
			WithFix("insert */", diag.FixEdit{
				Span:    source.Span{File: lx.file.ID, Start: tok.End(), End: tok.End()},
				NewText: "*/",
			}).
			Emit()
	}
}

func (lx *Lexer) restSpan(from uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: from, End: uint32(len(lx.file.Content))}
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("0x%02X", b)
}
