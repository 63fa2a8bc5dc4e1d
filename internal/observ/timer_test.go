package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerEmptyReport(t *testing.T) {
	r := NewTimer().Report()
	if r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
}

func TestTimerAggregatesByName(t *testing.T) {
	tm := NewTimer()
	tm.Add("load", 2*time.Millisecond, "")
	tm.Add("lex", 3*time.Millisecond, "a.c")
	tm.Add("lex", 5*time.Millisecond, "b.c")
	tm.Add("merge", time.Millisecond, "")

	r := tm.Report()
	if len(r.Phases) != 3 {
		t.Fatalf("phases=%d, want 3", len(r.Phases))
	}
	if r.Phases[1].Name != "lex" || r.Phases[1].DurationMS != 8 {
		t.Fatalf("lex phase = %+v", r.Phases[1])
	}
	if r.Phases[1].Note != "b.c" {
		t.Fatalf("last note must win, got %q", r.Phases[1].Note)
	}
	if r.TotalMS != 11 {
		t.Fatalf("total=%v, want 11", r.TotalMS)
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lex")
	tm.End(idx, "12 tokens")
	tm.End(42, "ignored")

	s := tm.Summary()
	if !strings.Contains(s, "lex") || !strings.Contains(s, "// 12 tokens") || !strings.Contains(s, "total") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("lex"), "")
		}()
	}
	wg.Wait()
	if tm.Len() != 16 {
		t.Fatalf("len=%d, want 16", tm.Len())
	}
	if got := len(tm.Report().Phases); got != 1 {
		t.Fatalf("phases=%d, want 1", got)
	}
}
