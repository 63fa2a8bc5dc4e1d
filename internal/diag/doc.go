// Package diag defines the diagnostic model shared by the lexer and the driver.
//
// # Purpose
//
//   - Provide deterministic data structures that capture lenient lexical
//     findings (unterminated literals, unknown characters or directives) and
//     source loading failures.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag does no IO. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: numeric identifier with a stable string form (LEX1001, IO4001).
//   - Message: short human oriented text.
//   - Primary: the source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages.
//   - Fixes: optional text edits, e.g. inserting a missing "*/".
//
// # Emitting diagnostics
//
// Producers build a ReportBuilder via ReportError/ReportWarning, chain
// WithNote/WithFix and call Emit. BagReporter stores into a bounded Bag;
// DedupReporter filters repeats in front of any Reporter.
//
// Note that the tokenizer never fails: a diagnostic describes how a span was
// measured, the token stream is produced regardless.
package diag
