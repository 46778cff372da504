package javagen

import (
	"errors"
	"fmt"

	"smergiel/internal/diag"
	"smergiel/internal/source"
	"smergiel/internal/symbols"
)

// ErrUnknownLogicalOp is wrapped by the error returned when a condition
// joins comparisons with something other than '&' or '|'. The parser never
// produces such a tree.
var ErrUnknownLogicalOp = errors.New("unknown logical operator")

// UnresolvedError is a use of a name that was never declared.
type UnresolvedError struct {
	Key  symbols.Key
	Name string // display name: variable name or "method/arity"
	Span source.Span
	Pos  source.LineCol
	// CharCol is the 0-based character column used by Error.
	CharCol uint32
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("Line %d:%d - %s", e.Pos.Line, e.CharCol, e.Message())
}

// Message is the diagnostic text without the position prefix.
func (e *UnresolvedError) Message() string {
	return fmt.Sprintf("Identifier %q is not declared", e.Name)
}

// SemanticError is any other error found while generating.
type SemanticError struct {
	Code    diag.Code
	Span    source.Span
	Pos     source.LineCol
	CharCol uint32
	Msg     string
	Err     error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("Line %d:%d - %s", e.Pos.Line, e.CharCol, e.Msg)
}

func (e *SemanticError) Unwrap() error { return e.Err }
