package driver

import (
	"context"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/parser"
	"smergiel/internal/source"
	"smergiel/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads and parses one file. Syntax errors land in the Bag;
// the returned error is reserved for load failures.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs, file, err := loadSource(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	prog := parseFile(ctx, file, bag, maxDiagnostics)
	return &ParseResult{FileSet: fs, File: file, Program: prog, Bag: bag}, nil
}

func parseFile(ctx context.Context, file *source.File, bag *diag.Bag, maxDiagnostics int) *ast.Program {
	_, span := trace.StartSpan(ctx, trace.ScopeStage, "parse")
	defer span.End("")

	// лексер и парсер сообщают об одной и той же позиции только один раз
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(file, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrorsFor(maxDiagnostics),
	})
	span.WithExtra("errors", itoa(res.Errors))
	return res.Program
}
