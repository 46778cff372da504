package parser

import (
	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/token"
)

// parseStatement — read, write, if. Присваивание начинается с Ident и
// разбирается через parseIdentLed.
func (p *Parser) parseStatement() (ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwRead:
		return p.parseRead()
	case token.KwWrite:
		return p.parseWrite()
	case token.KwIf:
		return p.parseIf()
	case token.Ident:
		_, stmt, ok := p.parseIdentLed(false)
		return stmt, ok
	default:
		p.err(diag.SynUnexpectedToken, "expected statement, got "+p.describePeek())
		p.advance() // гарантируем прогресс
		return nil, false
	}
}

func (p *Parser) parseAssignRest(target ast.Ident) (*ast.Assign, bool) {
	p.advance() // '='
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.expectDot("assignment") {
		return nil, false
	}
	return &ast.Assign{Target: target, Value: value, Span: p.spanFrom(target.Span)}, true
}

func (p *Parser) parseRead() (*ast.Read, bool) {
	kw := p.advance()
	stmt := &ast.Read{}
	for {
		tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier to read")
		if !ok {
			return nil, false
		}
		stmt.Targets = append(stmt.Targets, ast.Ident{Name: tok.Text, Span: tok.Span})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.expectDot("read") {
		return nil, false
	}
	stmt.Span = p.spanFrom(kw.Span)
	return stmt, true
}

func (p *Parser) parseWrite() (*ast.Write, bool) {
	kw := p.advance()
	stmt := &ast.Write{}
	for {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Values = append(stmt.Values, e)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.expectDot("write") {
		return nil, false
	}
	stmt.Span = p.spanFrom(kw.Span)
	return stmt, true
}

func (p *Parser) parseReturn() (*ast.Return, bool) {
	kw := p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.expectDot("return") {
		return nil, false
	}
	return &ast.Return{Value: value, Span: p.spanFrom(kw.Span)}, true
}

// if (cond) { ... } [else { ... }]
// else if не существует: после else всегда блок.
func (p *Parser) parseIf() (*ast.If, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return nil, false
	}
	cond, ok := p.parseCondition()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the condition"); !ok {
		return nil, false
	}
	then, ok := p.parseBlock("if")
	if !ok {
		return nil, false
	}
	stmt := &ast.If{Cond: cond, Then: then}
	if p.at(token.KwElse) {
		p.advance()
		els, ok := p.parseBlock("else")
		if !ok {
			return nil, false
		}
		stmt.Else = els
	}
	stmt.Span = p.spanFrom(kw.Span)
	return stmt, true
}

// parseBlock разбирает "{" stmtList "}". Ошибки внутри блока восстанавливаются
// до следующего оператора; сам блок считается неудачным только без '{' или '}'.
func (p *Parser) parseBlock(owner string) (*ast.StmtList, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after "+owner)
	if !ok {
		return nil, false
	}
	list := &ast.StmtList{}
	for !p.atOr(token.RBrace, token.EOF) && !p.opts.Enough() {
		if list.Return != nil {
			p.err(diag.SynReturnNotLast, "return must be the last statement of a block")
			p.skipBlockRest()
			break
		}
		if p.at(token.KwReturn) {
			if ret, ok := p.parseReturn(); ok {
				list.Return = ret
			} else {
				p.resyncStmt()
			}
			continue
		}
		stmt, ok := p.parseStatement()
		if !ok {
			p.resyncStmt()
			continue
		}
		list.Stmts = append(list.Stmts, stmt)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the "+owner+" block"); !ok {
		return nil, false
	}
	list.Span = p.spanFrom(open.Span)
	return list, true
}

// skipBlockRest съедает всё до закрывающей '}' текущего блока с учётом вложенности.
func (p *Parser) skipBlockRest() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}
