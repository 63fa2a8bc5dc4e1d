package diag

import (
	"ctruct/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces the bytes covered by Span with NewText.
type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
