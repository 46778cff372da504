package javagen

import (
	"fmt"
	"strings"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/symbols"
)

// emitMethod declares the signature key globally ("f/2") and the parameters
// under the method's own scope ("f:a"). A method whose signature is already
// taken, or whose name Java cannot take, is reported and left out of the
// output.
func (g *Generator) emitMethod(m *ast.Method) []string {
	sig := symbols.MethodKey(m.Name.Name, m.Arity())
	if !g.table.DeclareIfAbsent(sig, symbols.Site{Span: m.Name.Span, Kind: symbols.SiteMethod}) {
		msg := fmt.Sprintf("method %q with %d parameter(s) is already declared", m.Name.Name, m.Arity())
		g.fail(diag.SemaDuplicateMethod, m.Name.Span, msg, nil)
		return nil
	}
	// сигнатура уже объявлена: вызовы не дают каскада unresolved
	if !g.checkMethodName(m.Name) {
		return nil
	}

	scope := symbols.MethodScope(m.Name.Name)
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		if !g.table.DeclareIfAbsent(scope.Var(p.Name), symbols.Site{Span: p.Span, Kind: symbols.SiteParam}) {
			g.fail(diag.SemaDuplicateParam, p.Span, fmt.Sprintf("parameter %q is declared twice", p.Name), nil)
		} else {
			g.checkVarName(scope, p)
		}
		params[i] = "double " + p.Name
	}

	out := []string{fmt.Sprintf("public static double %s(%s) {", m.Name.Name, strings.Join(params, ", "))}
	body, returns := g.emitList(scope, m.Body)
	if !returns {
		// Java требует return на всех путях
		body = append(body, "return 0;")
	}
	out = append(out, indent(body)...)
	return append(out, "}")
}
