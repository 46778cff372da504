package javagen

import (
	"strings"
	"testing"

	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/parser"
	"smergiel/internal/source"
)

type genRun struct {
	res  Result
	err  error
	bag  *diag.Bag
	java string
}

func generate(t *testing.T, src string, opts Options) genRun {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.smr", []byte(src)))
	bag := diag.NewBag(50)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	pr := parser.ParseFile(file, lx, parser.Options{Reporter: reporter, MaxErrors: 10})
	if pr.Errors > 0 {
		t.Fatalf("parse errors in %q: %v", src, bag.Items())
	}

	opts.Reporter = reporter
	if opts.ClassName == "" {
		opts.ClassName = "Test"
	}
	res, err := Generate(pr.Program, fs, opts)
	return genRun{res: res, err: err, bag: bag, java: res.Java}
}

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	run := generate(t, src, Options{})
	if run.err != nil {
		t.Fatalf("generate %q: %v", src, run.err)
	}
	return run.java
}

// mainBody returns the lines inside main without indentation.
func mainBody(t *testing.T, java string) []string {
	t.Helper()
	start := strings.Index(java, "public static void main(String[] args) {\n")
	if start < 0 {
		t.Fatalf("no main in:\n%s", java)
	}
	rest := java[start+len("public static void main(String[] args) {\n"):]
	end := strings.Index(rest, "\n\t}\n")
	if end < 0 {
		t.Fatalf("main is not closed in:\n%s", java)
	}
	var out []string
	for _, l := range strings.Split(rest[:end], "\n") {
		if l = strings.TrimPrefix(l, "\t\t"); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("lines mismatch:\n--- got\n%s\n--- want\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
