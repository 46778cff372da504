package parser

import (
	"slices"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/source"
	"smergiel/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *ast.Program
	Errors  uint
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     source.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// The returned program is always non-nil; when Result.Errors > 0 it holds
// whatever could be recovered and must not be handed to the generator.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		file:     file.ID,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
	prog := p.parseProgram()
	return Result{Program: prog, Errors: p.opts.CurrentErrors}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseProgram — основной цикл верхнего уровня: методы и операторы main вперемешку,
// необязательный return в самом конце.
func (p *Parser) parseProgram() *ast.Program {
	start := p.lx.Peek().Span
	prog := &ast.Program{Body: &ast.StmtList{Span: source.Span{File: p.file, Start: start.Start, End: start.Start}}}

	for !p.at(token.EOF) && !p.opts.Enough() {
		if prog.Body.Return != nil {
			p.err(diag.SynReturnNotLast, "return must be the last statement of the program")
			p.skipToEOF()
			break
		}
		switch p.lx.Peek().Kind {
		case token.KwReturn:
			if ret, ok := p.parseReturn(); ok {
				prog.Body.Return = ret
				prog.Body.Span = prog.Body.Span.Cover(ret.Span)
			} else {
				p.resyncStmt()
			}
		case token.Ident:
			method, stmt, ok := p.parseIdentLed(true)
			switch {
			case !ok:
				p.resyncStmt()
			case method != nil:
				prog.Methods = append(prog.Methods, method)
			default:
				p.appendStmt(prog.Body, stmt)
			}
		default:
			if stmt, ok := p.parseStatement(); ok {
				p.appendStmt(prog.Body, stmt)
			} else {
				p.resyncStmt()
			}
		}
	}

	prog.Span = start
	if !prog.Span.Empty() || p.lastSpan.End > 0 {
		prog.Span = prog.Span.Cover(p.lastSpan)
	}
	return prog
}

func (p *Parser) appendStmt(list *ast.StmtList, stmt ast.Stmt) {
	list.Stmts = append(list.Stmts, stmt)
	if len(list.Stmts) == 1 && list.Span.Empty() {
		list.Span = stmt.NodeSpan()
		return
	}
	list.Span = list.Span.Cover(stmt.NodeSpan())
}

// parseIdentLed разбирает конструкцию, начинающуюся с идентификатора:
// объявление метода `f(a, b) { ... }` (только на верхнем уровне) или присваивание.
func (p *Parser) parseIdentLed(topLevel bool) (*ast.Method, ast.Stmt, bool) {
	nameTok := p.advance()
	name := ast.Ident{Name: nameTok.Text, Span: nameTok.Span}

	switch p.lx.Peek().Kind {
	case token.LParen:
		if !topLevel {
			p.err(diag.SynUnexpectedToken, "methods can only be declared at top level")
			return nil, nil, false
		}
		m, ok := p.parseMethodRest(name)
		return m, nil, ok
	case token.Assign:
		s, ok := p.parseAssignRest(name)
		return nil, s, ok
	default:
		p.err(diag.SynUnexpectedToken, "expected '=' after "+quote(name.Name)+", got "+p.describePeek())
		return nil, nil, false
	}
}
