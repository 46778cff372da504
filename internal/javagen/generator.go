package javagen

import (
	"strings"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/source"
	"smergiel/internal/symbols"
)

// Result of a Generate call. Java is filled even when Err is set so callers
// can inspect partial output.
type Result struct {
	Java       string
	Table      *symbols.Table
	Unresolved []*UnresolvedError
	// Warnings counts warning diagnostics produced while generating.
	Warnings int
}

// Generator holds the per-run state: the symbol table and collected errors.
// A Generator is used for exactly one program.
type Generator struct {
	opts     Options
	fs       *source.FileSet
	table    *symbols.Table
	errs     []error
	warnings int
}

func New(fs *source.FileSet, opts Options) *Generator {
	return &Generator{opts: opts, fs: fs, table: symbols.NewTable()}
}

// Generate is New(fs, opts).Generate(prog).
func Generate(prog *ast.Program, fs *source.FileSet, opts Options) (Result, error) {
	return New(fs, opts).Generate(prog)
}

// Generate emits prog and validates declarations. The returned error is the
// first error found: a semantic error from emission, otherwise the first
// unresolved identifier (in order of first use).
func (g *Generator) Generate(prog *ast.Program) (Result, error) {
	java := g.emitProgram(prog)
	unresolved := g.validate()

	res := Result{
		Java:       java,
		Table:      g.table,
		Unresolved: unresolved,
		Warnings:   g.warnings,
	}
	if len(g.errs) > 0 {
		return res, g.errs[0]
	}
	if len(unresolved) > 0 {
		return res, unresolved[0]
	}
	return res, nil
}

// Table exposes the symbol table filled by the last Generate call.
func (g *Generator) Table() *symbols.Table { return g.table }

func (g *Generator) position(sp source.Span) source.LineCol {
	if g.fs == nil || g.fs.Get(sp.File) == nil {
		return source.LineCol{}
	}
	return g.fs.Position(sp)
}

func (g *Generator) charColumn(sp source.Span) uint32 {
	if g.fs == nil {
		return 0
	}
	return g.fs.CharColumn(sp)
}

// fail records a semantic error and reports it.
func (g *Generator) fail(code diag.Code, sp source.Span, msg string, cause error) {
	g.errs = append(g.errs, &SemanticError{Code: code, Span: sp, Pos: g.position(sp), CharCol: g.charColumn(sp), Msg: msg, Err: cause})
	if g.opts.Reporter != nil {
		diag.ReportError(g.opts.Reporter, code, sp, msg).Emit()
	}
}

func (g *Generator) warn(code diag.Code, sp source.Span, msg string) {
	g.warnings++
	if g.opts.Reporter != nil {
		diag.ReportWarning(g.opts.Reporter, code, sp, msg).Emit()
	}
}

// indent prefixes every non-empty line with one tab.
func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			continue
		}
		out[i] = "\t" + l
	}
	return out
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
