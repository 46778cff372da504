package lexer

import (
	"smergiel/internal/diag"
	"smergiel/internal/token"
)

// Жадность: сначала 2-символьные (== != <= >= && ||), затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '='), lx.try2('>', '='):
		return emit(token.CompareOp)
	case lx.try2('&', '&'), lx.try2('|', '|'):
		return emit(token.LogicalOp)
	}

	switch ch := lx.cursor.Bump(); ch {
	case '+', '-', '*', '/', '%':
		return emit(token.Operator)
	case '<', '>':
		return emit(token.CompareOp)
	case '&', '|':
		return emit(token.LogicalOp)
	case '=':
		return emit(token.Assign)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteText(lx.text(sp)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
