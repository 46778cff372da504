// Package diag defines the diagnostic model shared by the lexer, the parser
// and the Java emitter.
//
// A Diagnostic carries a Severity, a numeric Code with a stable textual ID
// (LEX1xxx, SYN2xxx, SEM3xxx, IO4xxx, PRJ5xxx, OBS6xxx), a message, the
// primary span and optional notes and fixes.
//
// Producers never print. They call Reporter.Report (usually through
// ReportError/ReportWarning builders) and the driver decides where the
// diagnostics go: a Bag for later rendering by internal/diagfmt, a
// DedupReporter in front of it, or a MultiReporter fan-out.
//
// Bag keeps at most max entries; Sort orders them by file, offset, severity
// and code so output is deterministic.
package diag
