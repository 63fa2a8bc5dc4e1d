package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}

func TestSpanBasics(t *testing.T) {
	s := Span{File: 3, Start: 10, End: 14}
	if s.Len() != 4 || s.Empty() {
		t.Errorf("Len/Empty wrong for %v", s)
	}
	if s.String() != "3:10-14" {
		t.Errorf("String = %q", s.String())
	}
	if !s.Contains(Span{File: 3, Start: 11, End: 14}) {
		t.Error("expected Contains")
	}
	if s.Contains(Span{File: 3, Start: 9, End: 12}) {
		t.Error("unexpected Contains")
	}
}
