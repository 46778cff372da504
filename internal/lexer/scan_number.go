package lexer

import (
	"smergiel/internal/diag"
	"smergiel/internal/token"
)

// scanNumber читает digits [ '.' digits ].
// Точка без цифры после неё — это конец оператора ("x = 1."), не часть числа.
// Буквы сразу после цифр ("12ab") — LexBadNumber, весь хвост уходит в Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if r, sz := lx.peekRune(); sz > 0 && isIdentContinueRune(r) {
		lx.eatIdentContinue()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "invalid number literal "+quoteText(lx.text(sp)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}
