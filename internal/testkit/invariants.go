package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"smergiel/internal/ast"
	"smergiel/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) program span is within file content bounds and points at sf
// 2) every method, statement and expression span is non-empty and inside the program span
// 3) method bodies and if-branches lie inside their owner
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	if prog.Span.End > lenContent || prog.Span.Start > prog.Span.End {
		return fmt.Errorf("program span %v beyond content (%d bytes)", prog.Span, lenContent)
	}

	var firstErr error
	check := func(owner, sp source.Span, what string) {
		if firstErr != nil {
			return
		}
		switch {
		case sp.End <= sp.Start:
			firstErr = fmt.Errorf("empty %s span: %v", what, sp)
		case sp.File != sf.ID:
			firstErr = fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		case sp.Start < owner.Start || sp.End > owner.End:
			firstErr = fmt.Errorf("%s span %v is outside its owner %v", what, sp, owner)
		}
	}

	var checkList func(owner source.Span, list *ast.StmtList)
	checkList = func(owner source.Span, list *ast.StmtList) {
		if list == nil {
			return
		}
		for _, st := range list.Stmts {
			check(owner, st.NodeSpan(), fmt.Sprintf("%T", st))
			if s, ok := st.(*ast.If); ok {
				check(s.Span, s.Cond.Span, "condition")
				if s.Then != nil {
					check(s.Span, s.Then.Span, "then block")
					checkList(s.Then.Span, s.Then)
				}
				if s.Else != nil {
					check(s.Span, s.Else.Span, "else block")
					checkList(s.Else.Span, s.Else)
				}
			}
		}
		if list.Return != nil {
			check(owner, list.Return.Span, "return")
		}
	}

	for _, m := range prog.Methods {
		check(prog.Span, m.Span, "method")
		for _, param := range m.Params {
			check(m.Span, param.Span, "parameter")
		}
		if m.Body != nil {
			check(m.Span, m.Body.Span, "method body")
			checkList(m.Body.Span, m.Body)
		}
	}
	checkList(prog.Span, prog.Body)

	ast.Inspect(prog, func(n ast.Node) bool {
		if e, ok := n.(*ast.Expr); ok {
			check(prog.Span, e.Span, "expression")
		}
		return firstErr == nil
	})
	return firstErr
}
