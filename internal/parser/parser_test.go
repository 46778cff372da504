package parser

import (
	"testing"

	"smergiel/internal/ast"
)

func TestParseAssignAndWrite(t *testing.T) {
	prog := mustParse(t, "x = 1.\nwrite x.\n")
	if len(prog.Methods) != 0 || len(prog.Body.Stmts) != 2 {
		t.Fatalf("unexpected shape: %d methods, %d stmts", len(prog.Methods), len(prog.Body.Stmts))
	}
	as, ok := prog.Body.Stmts[0].(*ast.Assign)
	if !ok || as.Target.Name != "x" || exprText(as.Value) != "1" {
		t.Fatalf("first statement = %#v", prog.Body.Stmts[0])
	}
	wr, ok := prog.Body.Stmts[1].(*ast.Write)
	if !ok || len(wr.Values) != 1 || exprText(wr.Values[0]) != "x" {
		t.Fatalf("second statement = %#v", prog.Body.Stmts[1])
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = a+b*c.", "a+b*c"},
		{"x = (a+b)*c.", "(a+b)*c"},
		{"x = f().", "f()"},
		{"x = f(a, g(b+1), 2.5)%3.", "f(a,g(b+1),2.5)%3"},
		{"x = ((1)).", "((1))"},
	}
	for _, tt := range tests {
		prog := mustParse(t, tt.src)
		as := prog.Body.Stmts[0].(*ast.Assign)
		if got := exprText(as.Value); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	src := "f(a, b) {\n  c = a + b.\n  return c * 2.\n}\nwrite f(1, 2).\ng() { return 0. }\n"
	prog := mustParse(t, src)
	if len(prog.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(prog.Methods))
	}
	f := prog.Methods[0]
	if f.Name.Name != "f" || f.Arity() != 2 || f.Params[1].Name != "b" {
		t.Fatalf("bad header: %+v", f)
	}
	if len(f.Body.Stmts) != 1 || f.Body.Return == nil || exprText(f.Body.Return.Value) != "c*2" {
		t.Fatalf("bad body: %+v", f.Body)
	}
	if g := prog.Methods[1]; g.Name.Name != "g" || g.Arity() != 0 {
		t.Fatalf("bad second method: %+v", g)
	}
	if len(prog.Body.Stmts) != 1 {
		t.Fatalf("top-level statements between methods must stay in main, got %d", len(prog.Body.Stmts))
	}
}

func TestParseIfElse(t *testing.T) {
	src := "read n.\nif (n > 0 & n != 10 || n <= -1) {\n write 1.\n} else {\n write 0.\n}\n"
	// "-1" is not a primary
	if _, bag := parseSource(t, src); !bag.HasErrors() {
		t.Fatalf("expected error for unary minus")
	}

	prog := mustParse(t, "read n.\nif (n > 0 & n != 10 || n <= 0-1) {\n write 1.\n} else {\n write 0.\n}\n")
	ifs, ok := prog.Body.Stmts[1].(*ast.If)
	if !ok {
		t.Fatalf("expected if, got %T", prog.Body.Stmts[1])
	}
	cmps := ifs.Cond.Comparisons()
	if len(cmps) != 3 || cmps[0].Op != ">" || cmps[1].Op != "!=" || cmps[2].Op != "<=" {
		t.Fatalf("bad comparisons: %+v", cmps)
	}
	if ifs.Cond.Rest[0].Op != "&" || ifs.Cond.Rest[1].Op != "||" {
		t.Fatalf("bad logical ops: %+v", ifs.Cond.Rest)
	}
	if exprText(cmps[2].Right) != "0-1" {
		t.Fatalf("bad right side: %s", exprText(cmps[2].Right))
	}
	if ifs.Else == nil || len(ifs.Else.Stmts) != 1 {
		t.Fatalf("else branch missing")
	}
}

func TestParseReadWriteLists(t *testing.T) {
	prog := mustParse(t, "read a, b, c.\nwrite a, b+c, (a).\n")
	rd := prog.Body.Stmts[0].(*ast.Read)
	if len(rd.Targets) != 3 || rd.Targets[2].Name != "c" {
		t.Fatalf("read targets = %+v", rd.Targets)
	}
	wr := prog.Body.Stmts[1].(*ast.Write)
	if len(wr.Values) != 3 || !wr.Values[1].IsBinary() || wr.Values[2].IsBinary() {
		t.Fatalf("write values = %+v", wr.Values)
	}
}

func TestParseTopLevelReturn(t *testing.T) {
	prog := mustParse(t, "x = 1.\nreturn x.\n")
	if prog.Body.Return == nil || exprText(prog.Body.Return.Value) != "x" {
		t.Fatalf("top-level return not recorded")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "  \n// only a comment\n"} {
		prog := mustParse(t, src)
		if len(prog.Methods) != 0 || len(prog.Body.Stmts) != 0 || prog.Body.Return != nil {
			t.Fatalf("%q: expected empty program", src)
		}
	}
}

func TestNestedIfBlocks(t *testing.T) {
	src := "f(a) {\n if (a > 1) {\n  if (a > 2) { return 2. } else { return 3. }\n } else {\n  return 1.\n }\n}\n"
	prog := mustParse(t, src)
	body := prog.Methods[0].Body
	if body.Return != nil || !body.EndsWithReturn() {
		t.Fatalf("nested if/else must end with return on all paths")
	}
}
