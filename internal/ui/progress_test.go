package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ctruct/internal/driver"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("tokenize", files, nil).(*progressModel)
}

func TestApplyEventTracksStatus(t *testing.T) {
	m := newModel("a.c", "b.c", "c.c")

	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageLex, Status: driver.StatusWorking})
	if m.items[0].status != "lexing" {
		t.Fatalf("status=%q", m.items[0].status)
	}
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageLex, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.c", Stage: driver.StageLex, Status: driver.StatusCached})
	m.applyEvent(driver.Event{File: "c.c", Stage: driver.StageLoad, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "zzz.c", Stage: driver.StageLex, Status: driver.StatusDone})

	if m.finishedCount() != 3 || m.cached != 1 || m.failed != 1 {
		t.Fatalf("finished=%d cached=%d failed=%d", m.finishedCount(), m.cached, m.failed)
	}
	if p := m.percent(); p != 1.0 {
		t.Fatalf("percent=%v", p)
	}
	// события после завершения игнорируются
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageLex, Status: driver.StatusWorking})
	if m.items[0].status != "done" {
		t.Fatalf("finished item changed status to %q", m.items[0].status)
	}
}

func TestPercentByStage(t *testing.T) {
	m := newModel("a.c", "b.c")
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageLoad, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.c", Stage: driver.StageLex, Status: driver.StatusWorking})
	if p := m.percent(); p < 0.349 || p > 0.351 {
		t.Fatalf("percent=%v, want 0.35", p)
	}
}

func TestViewHeader(t *testing.T) {
	m := newModel("a.c", "b.c")
	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageLex, Status: driver.StatusCached})
	view := m.View()
	if !strings.Contains(view, "tokenize (1/2, 1 cached)") {
		t.Fatalf("view header missing:\n%s", view)
	}
	if !strings.Contains(view, "a.c") || !strings.Contains(view, "b.c") {
		t.Fatalf("files missing:\n%s", view)
	}
	if newModel().View() != "" {
		t.Fatalf("empty model must render nothing")
	}
}

func TestViewCollapsesLongLists(t *testing.T) {
	files := make([]string, 30)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.c", i)
	}
	m := newModel(files...)
	for _, f := range files[:15] {
		m.applyEvent(driver.Event{File: f, Stage: driver.StageLex, Status: driver.StatusDone})
	}
	view := m.View()
	if strings.Contains(view, "f00.c") {
		t.Fatalf("finished file must be hidden in long lists")
	}
	if !strings.Contains(view, "f15.c") || !strings.Contains(view, "15 more") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestDoneQuits(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("x", []string{"a.c"}, events).(*progressModel)
	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("closed channel must produce doneMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if !m.done || cmd == nil {
		t.Fatalf("done=%v cmd=%v", m.done, cmd)
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit command")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short.c", 20, "short.c"},
		{"very/long/path/file.c", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q,%d)=%q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
