package parser

import (
	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/token"
)

// parseExpr — primary { Operator primary }. Приоритетов нет: цепочка
// сохраняется как есть и печатается в Java без перестановок.
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	first, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	e := &ast.Expr{First: first}
	for p.at(token.Operator) {
		op := p.advance()
		operand, ok := p.parsePrimary()
		if !ok {
			return nil, false
		}
		e.Rest = append(e.Rest, ast.OpPrimary{Op: op.Text, OpSpan: op.Span, Operand: operand})
	}
	e.Span = first.NodeSpan().Cover(p.lastSpan)
	return e, true
}

func (p *Parser) parsePrimary() (ast.Primary, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return &ast.Number{Text: tok.Text, Span: tok.Span}, true
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallRest(ast.Ident{Name: tok.Text, Span: tok.Span})
		}
		return &ast.IdentRef{Name: tok.Text, Span: tok.Span}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return nil, false
		}
		return &ast.Paren{Inner: inner, Span: p.spanFrom(tok.Span)}, true
	default:
		p.err(diag.SynExpectExpression, "expected expression, got "+p.describePeek())
		return nil, false
	}
}

func (p *Parser) parseCallRest(name ast.Ident) (*ast.Call, bool) {
	p.advance() // '('
	call := &ast.Call{Name: name}
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			call.Args = append(call.Args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the call of "+quote(name.Name)); !ok {
		return nil, false
	}
	call.Span = p.spanFrom(name.Span)
	return call, true
}

// parseCondition — comparison { LogicalOp comparison }.
func (p *Parser) parseCondition() (*ast.Condition, bool) {
	first, ok := p.parseComparison()
	if !ok {
		return nil, false
	}
	c := &ast.Condition{First: first}
	for p.at(token.LogicalOp) {
		op := p.advance()
		cmp, ok := p.parseComparison()
		if !ok {
			return nil, false
		}
		c.Rest = append(c.Rest, ast.LogicalComparison{Op: op.Text, OpSpan: op.Span, Cmp: cmp})
	}
	c.Span = first.Span.Cover(p.lastSpan)
	return c, true
}

func (p *Parser) parseComparison() (*ast.Comparison, bool) {
	left, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	op, ok := p.expect(token.CompareOp, diag.SynExpectCompareOp, "expected comparison operator")
	if !ok {
		return nil, false
	}
	right, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Comparison{Left: left, Op: op.Text, Right: right, Span: left.Span.Cover(right.Span)}, true
}
