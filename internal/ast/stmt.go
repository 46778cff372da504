package ast

import "smergiel/internal/source"

// Stmt is implemented by *Assign, *If, *Read and *Write.
type Stmt interface {
	Node
	stmtNode()
}

// Node is anything with a span.
type Node interface {
	NodeSpan() source.Span
}

type Assign struct {
	Target Ident
	Value  *Expr
	Span   source.Span
}

type If struct {
	Cond *Condition
	Then *StmtList
	Else *StmtList // nil when there is no else branch
	Span source.Span
}

// AlwaysReturns reports whether both branches exist and return on every path.
func (s *If) AlwaysReturns() bool {
	return s.Else != nil && s.Then.EndsWithReturn() && s.Else.EndsWithReturn()
}

type Read struct {
	Targets []Ident
	Span    source.Span
}

type Write struct {
	Values []*Expr
	Span   source.Span
}

type Return struct {
	Value *Expr
	Span  source.Span
}

func (s *Assign) NodeSpan() source.Span { return s.Span }
func (s *If) NodeSpan() source.Span     { return s.Span }
func (s *Read) NodeSpan() source.Span   { return s.Span }
func (s *Write) NodeSpan() source.Span  { return s.Span }
func (s *Return) NodeSpan() source.Span { return s.Span }

func (*Assign) stmtNode() {}
func (*If) stmtNode()     {}
func (*Read) stmtNode()   {}
func (*Write) stmtNode()  {}
