package ast

import "smergiel/internal/source"

// Ident is a name together with where it was written.
type Ident struct {
	Name string
	Span source.Span
}

// Program is one compilation unit. Methods and top-level statements may be
// interleaved in the source; methods are collected separately and Body holds
// the entry-point statements in order.
type Program struct {
	Methods []*Method
	Body    *StmtList
	Span    source.Span
}

// Method is a user-defined function. All parameters and the result are
// numbers.
type Method struct {
	Name   Ident
	Params []Ident
	Body   *StmtList
	Span   source.Span
}

// Arity is the number of declared parameters.
func (m *Method) Arity() int { return len(m.Params) }

// StmtList is a block: zero or more statements and an optional trailing return.
type StmtList struct {
	Stmts  []Stmt
	Return *Return
	Span   source.Span
}

// EndsWithReturn reports whether every path through the list returns:
// through the trailing return or through an if/else whose branches both
// return. Statements after such an if/else can never run.
func (l *StmtList) EndsWithReturn() bool {
	if l == nil {
		return false
	}
	if l.Return != nil {
		return true
	}
	for _, s := range l.Stmts {
		if x, ok := s.(*If); ok && x.AlwaysReturns() {
			return true
		}
	}
	return false
}

func (p *Program) NodeSpan() source.Span  { return p.Span }
func (m *Method) NodeSpan() source.Span   { return m.Span }
func (l *StmtList) NodeSpan() source.Span { return l.Span }
