package javagen

import (
	"fmt"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/source"
	"smergiel/internal/symbols"
)

func (g *Generator) emitStmt(scope symbols.Scope, s ast.Stmt) []string {
	switch x := s.(type) {
	case *ast.Assign:
		return []string{g.emitAssign(scope, x)}
	case *ast.Read:
		return g.emitRead(scope, x)
	case *ast.Write:
		return []string{"System.out.println(" + g.emitPrintList(scope, x.Values) + ");"}
	case *ast.If:
		return g.emitIf(scope, x)
	}
	panic(fmt.Sprintf("javagen: unexpected statement %T", s))
}

// emitAssign declares the target before the value is emitted, so
// "x = x + 1." as the first mention of x declares it.
func (g *Generator) emitAssign(scope symbols.Scope, a *ast.Assign) string {
	fresh := g.table.DeclareIfAbsent(scope.Var(a.Target.Name), symbols.Site{Span: a.Target.Span, Kind: symbols.SiteAssign})
	if fresh {
		g.checkVarName(scope, a.Target)
	}
	value := g.emitExpr(scope, a.Value)
	return typed(fresh) + a.Target.Name + " = " + value + ";"
}

func (g *Generator) emitRead(scope symbols.Scope, r *ast.Read) []string {
	out := make([]string, 0, 2*len(r.Targets))
	for _, id := range r.Targets {
		fresh := g.table.DeclareIfAbsent(scope.Var(id.Name), symbols.Site{Span: id.Span, Kind: symbols.SiteRead})
		if fresh {
			g.checkVarName(scope, id)
		}
		out = append(out,
			fmt.Sprintf("System.out.println(\"Gimme %s: \");", id.Name),
			typed(fresh)+id.Name+" = read.nextDouble();",
		)
	}
	return out
}

// emitIf never fuses "else { if ... }" into "else if". Both branches share
// scope: the else-branch sees declarations made by the then-branch.
func (g *Generator) emitIf(scope symbols.Scope, s *ast.If) []string {
	out := []string{"if (" + g.emitCondition(scope, s.Cond) + ") {"}
	out = append(out, indent(g.emitBlock(scope, s.Then))...)
	if s.Else == nil {
		return append(out, "}")
	}
	out = append(out, "} else {")
	out = append(out, indent(g.emitBlock(scope, s.Else))...)
	return append(out, "}")
}

// emitBlock emits a nested statement list including its return.
func (g *Generator) emitBlock(scope symbols.Scope, l *ast.StmtList) []string {
	out, _ := g.emitList(scope, l)
	return out
}

// emitList emits l and reports whether every path through it returns.
// javac rejects anything after an if/else whose branches both return, so
// the rest of the list is neither walked nor emitted: one warning marks
// where the dropped code starts.
func (g *Generator) emitList(scope symbols.Scope, l *ast.StmtList) ([]string, bool) {
	var out []string
	for i, s := range l.Stmts {
		out = append(out, g.emitStmt(scope, s)...)
		if x, ok := s.(*ast.If); ok && x.AlwaysReturns() {
			g.dropUnreachable(l, i+1)
			return out, true
		}
	}
	if l.Return == nil {
		return out, false
	}
	return append(out, g.emitReturn(scope, l.Return)), true
}

func (g *Generator) dropUnreachable(l *ast.StmtList, from int) {
	var sp source.Span
	switch {
	case from < len(l.Stmts):
		sp = l.Stmts[from].NodeSpan()
	case l.Return != nil:
		sp = l.Return.Span
	default:
		return
	}
	g.warn(diag.SemaUnreachableCode, sp, "unreachable code after an if/else that always returns is dropped")
}

// emitReturn in main drops the value: the entry point is void. The value
// is still walked so that its names are checked.
func (g *Generator) emitReturn(scope symbols.Scope, r *ast.Return) string {
	value := g.emitExpr(scope, r.Value)
	if scope.IsMain() {
		g.warn(diag.SemaReturnInEntryPoint, r.Span, "return value in the entry point is ignored")
		return "return;"
	}
	return "return " + value + ";"
}

func typed(fresh bool) string {
	if fresh {
		return "double "
	}
	return ""
}
