package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"smergiel/internal/ast"
	"smergiel/internal/source"
)

// ASTNodeOutput is the JSON shape of one syntax node.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type treeNode struct {
	kind     string
	text     string
	span     source.Span
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) *treeNode {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

func (n *treeNode) label(fs *source.FileSet) string {
	if n.text == "" {
		return fmt.Sprintf("%s (span: %s)", n.kind, formatSpan(n.span, fs))
	}
	return fmt.Sprintf("%s: %s (span: %s)", n.kind, n.text, formatSpan(n.span, fs))
}

// FormatASTPretty prints the program as an indented tree.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	root := buildProgramTree(prog)
	header := "Program"
	if fs != nil {
		if f := fs.Get(prog.Span.File); f != nil {
			header = f.FormatPath("auto", fs.BaseDir())
		}
	}
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(prog.Span, fs)); err != nil {
		return err
	}
	var b strings.Builder
	writeTreeChildren(&b, root, "", fs)
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatASTJSON writes the program tree as indented JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSONNode(buildProgramTree(prog)))
}

func writeTreeChildren(b *strings.Builder, n *treeNode, prefix string, fs *source.FileSet) {
	for i, child := range n.children {
		last := i == len(n.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(child.label(fs))
		b.WriteByte('\n')
		writeTreeChildren(b, child, prefix+next, fs)
	}
}

func toJSONNode(n *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Type: n.kind, Text: n.text, Span: n.span}
	for _, c := range n.children {
		out.Children = append(out.Children, toJSONNode(c))
	}
	return out
}

func buildProgramTree(prog *ast.Program) *treeNode {
	root := &treeNode{kind: "Program", span: prog.Span}
	body := buildStmtListTree("Main", prog.Body)
	root.add(body)
	for _, m := range prog.Methods {
		root.add(buildMethodTree(m))
	}
	return root
}

func buildMethodTree(m *ast.Method) *treeNode {
	node := &treeNode{kind: "Method", text: fmt.Sprintf("%s/%d", m.Name.Name, m.Arity()), span: m.Span}
	if len(m.Params) > 0 {
		params := &treeNode{kind: "Params", span: m.Params[0].Span.Cover(m.Params[len(m.Params)-1].Span)}
		for _, p := range m.Params {
			params.add(&treeNode{kind: "Param", text: p.Name, span: p.Span})
		}
		node.add(params)
	}
	return node.add(buildStmtListTree("Body", m.Body))
}

func buildStmtListTree(kind string, list *ast.StmtList) *treeNode {
	if list == nil {
		return nil
	}
	node := &treeNode{kind: kind, span: list.Span}
	for _, st := range list.Stmts {
		node.add(buildStmtTree(st))
	}
	if list.Return != nil {
		node.add(buildStmtTree(list.Return))
	}
	return node
}

func buildStmtTree(st ast.Stmt) *treeNode {
	switch s := st.(type) {
	case *ast.Assign:
		return (&treeNode{kind: "Assign", text: s.Target.Name, span: s.Span}).add(buildExprTree(s.Value))
	case *ast.If:
		node := &treeNode{kind: "If", span: s.Span}
		return node.add(buildConditionTree(s.Cond), buildStmtListTree("Then", s.Then), buildStmtListTree("Else", s.Else))
	case *ast.Read:
		node := &treeNode{kind: "Read", span: s.Span}
		for _, t := range s.Targets {
			node.add(&treeNode{kind: "Target", text: t.Name, span: t.Span})
		}
		return node
	case *ast.Write:
		node := &treeNode{kind: "Write", span: s.Span}
		for _, v := range s.Values {
			node.add(buildExprTree(v))
		}
		return node
	case *ast.Return:
		node := &treeNode{kind: "Return", span: s.Span}
		if s.Value != nil {
			node.add(buildExprTree(s.Value))
		}
		return node
	default:
		return &treeNode{kind: fmt.Sprintf("%T", st), span: st.NodeSpan()}
	}
}

func buildConditionTree(c *ast.Condition) *treeNode {
	if c == nil {
		return nil
	}
	node := &treeNode{kind: "Condition", span: c.Span}
	node.add(buildComparisonTree(c.First))
	for _, lc := range c.Rest {
		node.add(&treeNode{kind: "Logical", text: lc.Op, span: lc.OpSpan})
		node.add(buildComparisonTree(lc.Cmp))
	}
	return node
}

func buildComparisonTree(c *ast.Comparison) *treeNode {
	if c == nil {
		return nil
	}
	return (&treeNode{kind: "Compare", text: c.Op, span: c.Span}).add(buildExprTree(c.Left), buildExprTree(c.Right))
}

func buildExprTree(e *ast.Expr) *treeNode {
	if e == nil {
		return nil
	}
	if !e.IsBinary() {
		return buildPrimaryTree(e.First)
	}
	node := &treeNode{kind: "Expr", span: e.Span}
	node.add(buildPrimaryTree(e.First))
	for _, op := range e.Rest {
		node.add(&treeNode{kind: "Op", text: op.Op, span: op.OpSpan})
		node.add(buildPrimaryTree(op.Operand))
	}
	return node
}

func buildPrimaryTree(p ast.Primary) *treeNode {
	switch v := p.(type) {
	case *ast.Number:
		return &treeNode{kind: "Number", text: v.Text, span: v.Span}
	case *ast.IdentRef:
		return &treeNode{kind: "Ident", text: v.Name, span: v.Span}
	case *ast.Call:
		node := &treeNode{kind: "Call", text: fmt.Sprintf("%s/%d", v.Name.Name, len(v.Args)), span: v.Span}
		for _, a := range v.Args {
			node.add(buildExprTree(a))
		}
		return node
	case *ast.Paren:
		return (&treeNode{kind: "Paren", span: v.Span}).add(buildExprTree(v.Inner))
	case nil:
		return nil
	default:
		return &treeNode{kind: fmt.Sprintf("%T", p), span: p.NodeSpan()}
	}
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
