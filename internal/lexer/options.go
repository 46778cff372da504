package lexer

import (
	"smergiel/internal/diag"
	"smergiel/internal/source"
)

// maxTokenLength caps a single identifier or number; longer input is
// reported once and the rest of the file is skipped.
const maxTokenLength = 4096

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
	// KeepTrivia attaches whitespace and comments to Token.Leading.
	// The parser does not need them, tokenize dumps do.
	KeepTrivia bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
