package driver

import "time"

// Stage describes a per-file tokenizer phase.
type Stage string

const (
	// StageLoad reads and normalizes the file.
	StageLoad Stage = "load"
	// StageLex runs both lexer passes.
	StageLex Stage = "lex"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusCached indicates the tokens came from the disk cache.
	StatusCached Status = "cached"
	// StatusError indicates the file could not be tokenized.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, e.g. for the terminal UI.
type ChannelSink chan Event

// OnEvent implements ProgressSink.
func (c ChannelSink) OnEvent(ev Event) { c <- ev }

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

// OnEvent implements ProgressSink.
func (f SinkFunc) OnEvent(ev Event) { f(ev) }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
