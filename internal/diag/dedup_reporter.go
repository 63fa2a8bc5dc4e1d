package diag

import (
	"sync"

	"ctruct/internal/source"
)

type dedupKey struct {
	code  Code
	file  source.FileID
	start uint32
	msg   string
}

// dedupState общий для всех Forward-копий одного прогона.
type dedupState struct {
	mu         sync.Mutex
	seen       map[dedupKey]struct{}
	perRun     map[Code]struct{}
	suppressed int
}

// DedupReporter drops repeated diagnostics before they reach next.
// A diagnostic repeats when code, file, start offset and message match.
// Codes listed as per-run collapse by code alone: a broken token cache
// is reported for the first file only, not for every file of a directory.
type DedupReporter struct {
	next  Reporter
	state *dedupState
}

// NewDedupReporter wraps next. Safe for concurrent use through Forward copies.
func NewDedupReporter(next Reporter, perRun ...Code) *DedupReporter {
	st := &dedupState{
		seen:   make(map[dedupKey]struct{}),
		perRun: make(map[Code]struct{}, len(perRun)),
	}
	for _, c := range perRun {
		st.perRun[c] = struct{}{}
	}
	return &DedupReporter{next: next, state: st}
}

// Forward returns a reporter writing to next that shares the seen set with r.
// Воркеры получают по копии на файл: у каждого свой Bag, фильтр общий.
func (r *DedupReporter) Forward(next Reporter) *DedupReporter {
	if r == nil {
		return NewDedupReporter(next)
	}
	return &DedupReporter{next: next, state: r.state}
}

// Suppressed returns how many diagnostics were dropped so far.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.suppressed
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r == nil {
		return
	}
	key := dedupKey{code: code}
	st := r.state
	st.mu.Lock()
	if _, ok := st.perRun[code]; !ok {
		key.file, key.start, key.msg = primary.File, primary.Start, msg
	}
	_, dup := st.seen[key]
	if dup {
		st.suppressed++
	} else {
		st.seen[key] = struct{}{}
	}
	st.mu.Unlock()

	if !dup && r.next != nil {
		r.next.Report(code, sev, primary, msg, notes, fixes)
	}
}
