package ast

// Inspect calls fn for every node reachable from n in source order.
// If fn returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	switch x := n.(type) {
	case *Program:
		// сначала методы, потом тело main
		for _, m := range x.Methods {
			Inspect(m, fn)
		}
		if x.Body != nil {
			Inspect(x.Body, fn)
		}
	case *Method:
		if x.Body != nil {
			Inspect(x.Body, fn)
		}
	case *StmtList:
		for _, s := range x.Stmts {
			Inspect(s, fn)
		}
		if x.Return != nil {
			Inspect(x.Return, fn)
		}
	case *Assign:
		Inspect(x.Value, fn)
	case *If:
		inspectCondition(x.Cond, fn)
		Inspect(x.Then, fn)
		if x.Else != nil {
			Inspect(x.Else, fn)
		}
	case *Write:
		for _, v := range x.Values {
			Inspect(v, fn)
		}
	case *Return:
		Inspect(x.Value, fn)
	case *Expr:
		Inspect(x.First, fn)
		for _, r := range x.Rest {
			Inspect(r.Operand, fn)
		}
	case *Call:
		for _, a := range x.Args {
			Inspect(a, fn)
		}
	case *Paren:
		Inspect(x.Inner, fn)
	}
}

func inspectCondition(c *Condition, fn func(Node) bool) {
	if c == nil {
		return
	}
	for _, cmp := range c.Comparisons() {
		if cmp == nil {
			continue
		}
		Inspect(cmp.Left, fn)
		Inspect(cmp.Right, fn)
	}
}

// Comparisons returns every comparison of the condition in order.
func (c *Condition) Comparisons() []*Comparison {
	out := make([]*Comparison, 0, 1+len(c.Rest))
	out = append(out, c.First)
	for _, r := range c.Rest {
		out = append(out, r.Cmp)
	}
	return out
}

// isNil catches typed nil pointers left by error recovery.
func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Program:
		return x == nil
	case *Method:
		return x == nil
	case *StmtList:
		return x == nil
	case *Assign:
		return x == nil
	case *If:
		return x == nil
	case *Read:
		return x == nil
	case *Write:
		return x == nil
	case *Return:
		return x == nil
	case *Expr:
		return x == nil
	case *Number:
		return x == nil
	case *IdentRef:
		return x == nil
	case *Call:
		return x == nil
	case *Paren:
		return x == nil
	}
	return false
}
