package javagen

import (
	"smergiel/internal/diag"
)

// validate checks uses against declarations in first-use order. Without
// ReportAll only the first unresolved name is reported and returned.
func (g *Generator) validate() []*UnresolvedError {
	var out []*UnresolvedError
	for _, use := range g.table.Unresolved() {
		e := &UnresolvedError{
			Key:     use.Key,
			Name:    use.Key.DisplayName(),
			Span:    use.Site.Span,
			Pos:     g.position(use.Site.Span),
			CharCol: g.charColumn(use.Site.Span),
		}
		out = append(out, e)
		if g.opts.Reporter != nil {
			diag.ReportError(g.opts.Reporter, diag.SemaUndeclaredIdent, e.Span, e.Message()).Emit()
		}
		if !g.opts.ReportAll {
			break
		}
	}
	return out
}
