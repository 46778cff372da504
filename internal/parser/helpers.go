package parser

import (
	"strconv"

	"smergiel/internal/diag"
	"smergiel/internal/source"
	"smergiel/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// На EOF указываем сразу за последним съеденным токеном, а не в конец файла.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	p.err(code, msg+", got "+p.describePeek())
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) expectDot(what string) bool {
	_, ok := p.expect(token.Dot, diag.SynExpectDot, "expected '.' after "+what)
	return ok
}

// репортует ошибку и передает текущий спан.
// Invalid токены уже описал лексер, второй раз не шумим, но ошибку считаем.
func (p *Parser) err(code diag.Code, msg string) {
	if p.at(token.Invalid) {
		if !p.opts.Enough() {
			p.opts.CurrentErrors++
		}
		return
	}
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		if p.opts.Enough() {
			return // достигли максимального количества ошибок
		}
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return
	}
	diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg).Emit()
}

// resyncStmt прокручивает токены до конца оператора: съедает '.',
// останавливается перед '}' и перед началом следующего оператора.
func (p *Parser) resyncStmt() {
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF, tok.Kind == token.RBrace:
			return
		case tok.Kind == token.Dot:
			p.advance()
			return
		case tok.StartsStatement():
			return
		}
		p.advance()
	}
}

func (p *Parser) skipToEOF() {
	for !p.at(token.EOF) {
		p.advance()
	}
}

func (p *Parser) describePeek() string {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.Number, token.Operator, token.CompareOp, token.LogicalOp:
		return tok.Kind.Describe() + " " + quote(tok.Text)
	default:
		return tok.Kind.Describe()
	}
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func quote(s string) string { return strconv.Quote(s) }
