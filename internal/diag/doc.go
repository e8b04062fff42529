// Package diag defines the violation model shared by the lexer, the sniff
// dispatcher and every rule.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for style violations,
//     configuration problems and I/O failures.
//   - Offer light-weight sinks (Reporter, Bag) so producers emit diagnostics
//     without coupling to storage or formatting.
//
// # Scope
//
// Package diag does no rendering and no IO. Pretty/JSON/SARIF output lives in
// internal/diagfmt; collection per file and per run lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Rule – dotted name of the sniff that produced it, empty for lexer/IO.
//   - Message – human oriented text, quoted from the rule.
//   - Primary – source span of the anchor token.
//   - Token – index of the anchor token in the file's stream (-1 for file start).
//   - Notes – optional secondary spans with context.
//
// Rules never read diagnostics back: once emitted a Diagnostic is owned by the
// Reporter that received it.
package diag
