package parser

import (
	"fmt"
	"strings"
	"testing"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/source"
	"smergiel/internal/testkit"
)

func parseSource(t *testing.T, input string) (*ast.Program, *diag.Bag) {
	return parseSourceWithOptions(t, input, Options{})
}

func parseSourceWithOptions(t *testing.T, input string, opts Options) (*ast.Program, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.smr", []byte(input)))

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	if opts.MaxErrors == 0 {
		opts.MaxErrors = 100
	}
	opts.Reporter = reporter

	res := ParseFile(file, lx, opts)
	if res.Program == nil {
		t.Fatalf("ParseFile returned nil program")
	}
	if !bag.HasErrors() {
		if err := testkit.CheckSpanInvariants(res.Program, file); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
	}
	return res.Program, bag
}

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return prog
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// exprText печатает цепочку выражения обратно в исходный вид без пробелов.
func exprText(e *ast.Expr) string {
	var b strings.Builder
	b.WriteString(primaryText(e.First))
	for _, r := range e.Rest {
		b.WriteString(r.Op)
		b.WriteString(primaryText(r.Operand))
	}
	return b.String()
}

func primaryText(p ast.Primary) string {
	switch x := p.(type) {
	case *ast.Number:
		return x.Text
	case *ast.IdentRef:
		return x.Name
	case *ast.Paren:
		return "(" + exprText(x.Inner) + ")"
	case *ast.Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = exprText(a)
		}
		return x.Name.Name + "(" + strings.Join(args, ",") + ")"
	}
	return "?"
}
