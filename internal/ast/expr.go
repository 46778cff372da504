package ast

import "smergiel/internal/source"

// Expr is a flat left-to-right chain: First op1 p1 op2 p2 ...
// There is no precedence in the tree; Java applies its own when the
// operators are emitted verbatim.
type Expr struct {
	First Primary
	Rest  []OpPrimary
	Span  source.Span
}

// IsBinary reports whether the expression has at least one operator.
func (e *Expr) IsBinary() bool { return len(e.Rest) > 0 }

type OpPrimary struct {
	Op      string
	OpSpan  source.Span
	Operand Primary
}

// Primary is implemented by *Number, *IdentRef, *Call and *Paren.
type Primary interface {
	Node
	primaryNode()
}

type Number struct {
	Text string
	Span source.Span
}

type IdentRef struct {
	Name string
	Span source.Span
}

type Call struct {
	Name Ident
	Args []*Expr
	Span source.Span
}

type Paren struct {
	Inner *Expr
	Span  source.Span
}

func (p *Number) NodeSpan() source.Span   { return p.Span }
func (p *IdentRef) NodeSpan() source.Span { return p.Span }
func (p *Call) NodeSpan() source.Span     { return p.Span }
func (p *Paren) NodeSpan() source.Span    { return p.Span }
func (e *Expr) NodeSpan() source.Span     { return e.Span }

func (*Number) primaryNode()   {}
func (*IdentRef) primaryNode() {}
func (*Call) primaryNode()     {}
func (*Paren) primaryNode()    {}

// Comparison is "Left Op Right" with Op one of == != < <= > >=.
type Comparison struct {
	Left  *Expr
	Op    string
	Right *Expr
	Span  source.Span
}

// LogicalComparison is a comparison prefixed by the logical operator that
// joins it to the previous one.
type LogicalComparison struct {
	Op     string
	OpSpan source.Span
	Cmp    *Comparison
}

// Condition is First followed by zero or more joined comparisons. Like Expr
// it is flat and emitted left to right.
type Condition struct {
	First *Comparison
	Rest  []LogicalComparison
	Span  source.Span
}
