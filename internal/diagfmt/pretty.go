package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ctruct/internal/diag"
	"ctruct/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	bold := color.New(color.Bold)
	gutter := color.New(color.FgBlue)
	noteC := color.New(color.FgCyan)
	fixC := color.New(color.FgGreen)
	for _, c := range []*color.Color{bold, gutter, noteC, fixC} {
		setColor(c, opts.Color)
	}

	for _, d := range bag.Items() {
		sevC := severityColor(d.Severity)
		setColor(sevC, opts.Color)

		loc := location(fs, d.Primary, opts.PathMode)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			bold.Sprint(loc),
			sevC.Sprint(diag.SeverityLabel(d.Severity)),
			d.Code.ID(),
			d.Message)
		writeSnippet(w, fs, d.Primary, gutter, sevC)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  %s %s: %s\n", noteC.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
			}
		}
		if opts.ShowFixes {
			for _, f := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", fixC.Sprint("fix:"), f.Title)
				for _, e := range f.Edits {
					start, _ := fs.Resolve(e.Span)
					fmt.Fprintf(w, "    at %d:%d insert %q\n", start.Line, start.Col, e.NewText)
				}
			}
		}
	}

	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostics not shown\n", n)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, mode, fs.BaseDir()), start.Line, start.Col)
}

// writeSnippet печатает строку начала span и подчёркивание под ним.
// Span, уходящий за конец строки, подчёркивается до конца строки.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, gutter, mark *color.Color) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}

	num := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s %s\n", gutter.Sprint(num), gutter.Sprint("|"), expandTabs(line))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	width := len(line) - col
	if end.Line == start.Line {
		width = int(end.Col - start.Col)
	}
	under := "^"
	if seg := line[col : col+max(0, min(width, len(line)-col))]; runewidth.StringWidth(seg) > 1 {
		under += strings.Repeat("~", runewidth.StringWidth(seg)-1)
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(expandTabs(line[:col])))
	fmt.Fprintf(w, " %s %s %s%s\n", pad, gutter.Sprint("|"), indent, mark.Sprint(under))
}

// expandTabs заменяет табы на четыре пробела, чтобы ^ совпадал с колонкой.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgCyan)
}
