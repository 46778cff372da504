package parser

import (
	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/token"
)

// parseMethodRest разбирает "(" [params] ")" "{" stmtList "}" после имени метода.
func (p *Parser) parseMethodRest(name ast.Ident) (*ast.Method, bool) {
	p.advance() // '('
	m := &ast.Method{Name: name}
	if !p.at(token.RParen) {
		for {
			tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				return nil, false
			}
			m.Params = append(m.Params, ast.Ident{Name: tok.Text, Span: tok.Span})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters of "+quote(name.Name)); !ok {
		return nil, false
	}
	body, ok := p.parseBlock("method " + quote(name.Name))
	if !ok {
		return nil, false
	}
	m.Body = body
	m.Span = p.spanFrom(name.Span)
	return m, true
}
