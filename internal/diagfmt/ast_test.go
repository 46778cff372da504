package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/parser"
	"smergiel/internal/source"
	"smergiel/internal/token"
)

func parseForDump(t *testing.T, src string) (*ast.Program, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("dump.smr", []byte(src)))
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(file, lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{MaxErrors: 10, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	return res.Program, fs
}

func TestFormatASTPretty(t *testing.T) {
	prog, fs := parseForDump(t, "x = 1.\nwrite x+2.\nf(a) { return a. }\n")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, prog, fs); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"dump.smr (span: ",
		"├─ Main (span: ",
		"│  ├─ Assign: x (span: 1:1-1:7)",
		"│  │  └─ Number: 1 (span: 1:5-1:6)",
		"│  └─ Write (span: ",
		"└─ Method: f/1 (span: ",
		"   ├─ Params (span: ",
		"Param: a",
		"Return (span: ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("tree missing %q:\n%s", want, got)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	prog, _ := parseForDump(t, "if (a < 1 && b > 2) { write a. } else { write b. }\n")
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, prog); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("unexpected root: %+v", root)
	}
	main := root.Children[0]
	if main.Type != "Main" || len(main.Children) != 1 || main.Children[0].Type != "If" {
		t.Fatalf("unexpected main: %+v", main)
	}
	ifNode := main.Children[0]
	var kinds []string
	for _, c := range ifNode.Children {
		kinds = append(kinds, c.Type)
	}
	if strings.Join(kinds, ",") != "Condition,Then,Else" {
		t.Fatalf("if children = %v", kinds)
	}
	cond := ifNode.Children[0]
	if len(cond.Children) != 3 || cond.Children[1].Type != "Logical" || cond.Children[1].Text != "&&" {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestFormatASTNil(t *testing.T) {
	if err := FormatASTPretty(&bytes.Buffer{}, nil, nil); err == nil {
		t.Fatal("expected error for nil program")
	}
	if err := FormatASTJSON(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected error for nil program")
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("tok.smr", []byte("x = 1.")))
	lx := lexer.New(file, lexer.Options{KeepTrivia: true})
	toks := lx.All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	if !strings.HasPrefix(pretty.String(), "  1: Ident      \"x\" at 1:1-1:2\n") {
		t.Fatalf("unexpected pretty tokens:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks, fs); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var kinds []string
	for _, o := range out {
		kinds = append(kinds, o.Kind)
	}
	want := []string{
		token.Ident.String(), token.Assign.String(), token.Number.String(),
		token.Dot.String(), token.EOF.String(),
	}
	if strings.Join(kinds, " ") != strings.Join(want, " ") {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if out[2].Line != 1 || out[2].Col != 5 || len(out[1].Leading) != 1 {
		t.Fatalf("unexpected token detail: %+v / %+v", out[2], out[1])
	}
}
