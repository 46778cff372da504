// Package token defines lexical token kinds and trivia for Smergiel sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Keywords are lower-case only; "If" is an identifier.
//   - Arithmetic, comparison and logical operators share one kind per class
//     (Operator, CompareOp, LogicalOp); the spelling lives in Text and is
//     emitted verbatim by the Java generator.
//   - Comments and whitespace are leading Trivia and never appear in the
//     main token stream.
package token
