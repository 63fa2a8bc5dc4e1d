package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"ctruct/internal/source"
	"ctruct/internal/token"
)

// TokenOutput is one token in machine-readable output.
type TokenOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Pos  uint32 `json:"pos" msgpack:"pos"`
	Len  uint32 `json:"len" msgpack:"len"`
	Line uint32 `json:"line,omitempty" msgpack:"line,omitempty"`
	Col  uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
	Text string `json:"text,omitempty" msgpack:"text,omitempty"`
}

// FileTokensOutput is the token stream of one file.
type FileTokensOutput struct {
	File      string        `json:"file" msgpack:"file"`
	Tokens    []TokenOutput `json:"tokens" msgpack:"tokens"`
	Consumed  uint32        `json:"consumed" msgpack:"consumed"`
	Truncated bool          `json:"truncated,omitempty" msgpack:"truncated,omitempty"`
}

// BuildTokensOutput converts a token stream of file into its output form.
func BuildTokensOutput(file *source.File, toks []token.Token, consumed uint32, truncated bool, opts TokenOpts) FileTokensOutput {
	out := FileTokensOutput{
		File:      formatPath(file, opts.PathMode, opts.BaseDir),
		Tokens:    make([]TokenOutput, len(toks)),
		Consumed:  consumed,
		Truncated: truncated,
	}
	for i, tok := range toks {
		t := TokenOutput{Kind: tok.Kind.String(), Pos: tok.Pos, Len: tok.Len}
		if opts.Positions {
			lc := file.LineCol(tok.Pos)
			t.Line, t.Col = lc.Line, lc.Col
		}
		if opts.Text {
			t.Text = tok.Text(file.Content)
		}
		out.Tokens[i] = t
	}
	return out
}

// FormatTokensPretty выводит токены файла в человекочитаемом формате:
// номер, вид, (pos,len), line:col и экранированная лексема.
func FormatTokensPretty(w io.Writer, file *source.File, toks []token.Token, opts TokenOpts) error {
	header := color.New(color.Bold)
	setColor(header, opts.Color)
	if _, err := fmt.Fprintf(w, "%s (%d tokens)\n", header.Sprint(formatPath(file, opts.PathMode, opts.BaseDir)), len(toks)); err != nil {
		return err
	}

	kindWidth := 0
	for _, tok := range toks {
		kindWidth = max(kindWidth, len(tok.Kind.String()))
	}

	for i, tok := range toks {
		kind := runewidth.FillRight(tok.Kind.String(), kindWidth)
		c := kindColor(tok.Kind)
		setColor(c, opts.Color)

		lc := file.LineCol(tok.Pos)
		loc := fmt.Sprintf("%d:%d", lc.Line, lc.Col)
		text := EscapeControl(tok.Text(file.Content))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "…")
		}
		if _, err := fmt.Fprintf(w, "%4d  %s  %-12s %-8s %s\n",
			i+1, c.Sprint(kind), fmt.Sprintf("(%d,%d)", tok.Pos, tok.Len), loc, text); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, files []FileTokensOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if len(files) == 1 {
		return encoder.Encode(files[0])
	}
	return encoder.Encode(files)
}

// FormatTokensMsgpack writes files as a single msgpack array.
func FormatTokensMsgpack(w io.Writer, files []FileTokensOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(files)
}

func kindColor(k token.Kind) *color.Color {
	t := token.Token{Kind: k}
	switch {
	case t.IsDirective():
		return color.New(color.FgMagenta)
	case t.IsKeyword():
		return color.New(color.FgBlue, color.Bold)
	case t.IsLiteral():
		return color.New(color.FgGreen)
	case t.IsComment():
		return color.New(color.FgHiBlack)
	case t.IsOperator(), t.IsPunct():
		return color.New(color.FgYellow)
	}
	return color.New(color.Reset)
}

// setColor явно включает или выключает цвет, не полагаясь на color.NoColor.
func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
