package javagen

import (
	"fmt"
	"strings"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/symbols"
)

// emitExpr prints the operator chain as written, without spaces:
// "a + b * 2" becomes "a+b*2".
func (g *Generator) emitExpr(scope symbols.Scope, e *ast.Expr) string {
	var b strings.Builder
	b.WriteString(g.emitPrimary(scope, e.First))
	for _, r := range e.Rest {
		b.WriteString(r.Op)
		b.WriteString(g.emitPrimary(scope, r.Operand))
	}
	return b.String()
}

func (g *Generator) emitPrimary(scope symbols.Scope, p ast.Primary) string {
	switch x := p.(type) {
	case *ast.Number:
		return x.Text
	case *ast.IdentRef:
		g.table.RecordUse(scope.Var(x.Name), symbols.Site{Span: x.Span, Kind: symbols.SiteIdent})
		return x.Name
	case *ast.Paren:
		return "(" + g.emitExpr(scope, x.Inner) + ")"
	case *ast.Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = g.emitExpr(scope, a)
		}
		g.table.RecordUse(symbols.MethodKey(x.Name.Name, len(x.Args)), symbols.Site{Span: x.Name.Span, Kind: symbols.SiteCall})
		return x.Name.Name + "(" + strings.Join(args, ",") + ")"
	}
	panic(fmt.Sprintf("javagen: unexpected primary %T", p))
}

// emitCondition prints comparisons spaced ("a > 1") and joins them with
// Java's short-circuit operators.
func (g *Generator) emitCondition(scope symbols.Scope, c *ast.Condition) string {
	var b strings.Builder
	b.WriteString(g.emitComparison(scope, c.First))
	for _, r := range c.Rest {
		op, ok := javaLogicalOp(r.Op)
		if !ok {
			g.fail(diag.SemaUnknownLogicalOp, r.OpSpan,
				fmt.Sprintf("unknown logical operator %q", r.Op), ErrUnknownLogicalOp)
		}
		b.WriteString(" " + op + " ")
		b.WriteString(g.emitComparison(scope, r.Cmp))
	}
	return b.String()
}

func (g *Generator) emitComparison(scope symbols.Scope, c *ast.Comparison) string {
	return g.emitExpr(scope, c.Left) + " " + c.Op + " " + g.emitExpr(scope, c.Right)
}

// javaLogicalOp maps by the first character: '&' and '&&' give "&&",
// '|' and '||' give "||".
func javaLogicalOp(op string) (string, bool) {
	if op == "" {
		return "", false
	}
	switch op[0] {
	case '&':
		return "&&", true
	case '|':
		return "||", true
	}
	return "", false
}

// emitPrintList joins values with +" "+. With more than one value an
// operator chain is wrapped in parentheses, otherwise Java would turn
// "a+b" into string concatenation once a string is on the left.
func (g *Generator) emitPrintList(scope symbols.Scope, values []*ast.Expr) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s := g.emitExpr(scope, v)
		if len(values) > 1 && v.IsBinary() {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, `+" "+`)
}
