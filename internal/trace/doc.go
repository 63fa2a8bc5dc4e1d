// Package trace is the logging layer of ctruct: structured begin/end events
// for CLI commands, lexer passes and per-file work.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	ctruct tokenize --trace=- --trace-level=detail src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a file or stderr (text or NDJSON)
//   - RingTracer: last N events in memory, dumped on failure
//   - MultiTracer: fan-out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopePass events, LevelDetail adds
// ScopeFile, LevelDebug emits everything.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
