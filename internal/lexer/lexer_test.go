package lexer_test

import (
	"strings"
	"testing"

	"smergiel/internal/diag"
	"smergiel/internal/lexer"
	"smergiel/internal/source"
	"smergiel/internal/token"
)

func lexAll(t *testing.T, src string, keepTrivia bool) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.smr", []byte(src)))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepTrivia: keepTrivia})
	return lx.All(), bag
}

type kt struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, src string, want []kt) {
	t.Helper()
	toks, bag := lexAll(t, src, false)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %v", src, bag.Items())
	}
	if len(toks) != len(want)+1 {
		t.Fatalf("%q: got %d tokens, want %d (+EOF): %v", src, len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("%q token %d = %v %q, want %v %q", src, i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Errorf("last token must be EOF")
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		src  string
		want []kt
	}{
		{"x = 1.", []kt{{token.Ident, "x"}, {token.Assign, "="}, {token.Number, "1"}, {token.Dot, "."}}},
		{"y = 2.5.", []kt{{token.Ident, "y"}, {token.Assign, "="}, {token.Number, "2.5"}, {token.Dot, "."}}},
		{"read a, b.", []kt{{token.KwRead, "read"}, {token.Ident, "a"}, {token.Comma, ","}, {token.Ident, "b"}, {token.Dot, "."}}},
		{"write f(2)%3.", []kt{
			{token.KwWrite, "write"}, {token.Ident, "f"}, {token.LParen, "("}, {token.Number, "2"},
			{token.RParen, ")"}, {token.Operator, "%"}, {token.Number, "3"}, {token.Dot, "."},
		}},
		{"return a/b-c*d+e.", []kt{
			{token.KwReturn, "return"}, {token.Ident, "a"}, {token.Operator, "/"}, {token.Ident, "b"},
			{token.Operator, "-"}, {token.Ident, "c"}, {token.Operator, "*"}, {token.Ident, "d"},
			{token.Operator, "+"}, {token.Ident, "e"}, {token.Dot, "."},
		}},
	}
	for _, tt := range tests {
		expectTokens(t, tt.src, tt.want)
	}
}

func TestConditionOperators(t *testing.T) {
	expectTokens(t, "if (a <= b && c != 1 | d > 0) {} else {}", []kt{
		{token.KwIf, "if"}, {token.LParen, "("},
		{token.Ident, "a"}, {token.CompareOp, "<="}, {token.Ident, "b"},
		{token.LogicalOp, "&&"},
		{token.Ident, "c"}, {token.CompareOp, "!="}, {token.Number, "1"},
		{token.LogicalOp, "|"},
		{token.Ident, "d"}, {token.CompareOp, ">"}, {token.Number, "0"},
		{token.RParen, ")"}, {token.LBrace, "{"}, {token.RBrace, "}"},
		{token.KwElse, "else"}, {token.LBrace, "{"}, {token.RBrace, "}"},
	})
	expectTokens(t, "a==b", []kt{{token.Ident, "a"}, {token.CompareOp, "=="}, {token.Ident, "b"}})
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	expectTokens(t, "If Write read_x", []kt{{token.Ident, "If"}, {token.Ident, "Write"}, {token.Ident, "read_x"}})
}

func TestUnicodeIdentifier(t *testing.T) {
	expectTokens(t, "café = 1.", []kt{{token.Ident, "café"}, {token.Assign, "="}, {token.Number, "1"}, {token.Dot, "."}})
}

func TestCommentsAreTrivia(t *testing.T) {
	src := "// header\nx = 1. /* inline */ write x.\n"
	expectTokens(t, src, []kt{
		{token.Ident, "x"}, {token.Assign, "="}, {token.Number, "1"}, {token.Dot, "."},
		{token.KwWrite, "write"}, {token.Ident, "x"}, {token.Dot, "."},
	})

	toks, _ := lexAll(t, src, true)
	lead := toks[0].Leading
	if len(lead) != 2 || lead[0].Kind != token.TriviaLineComment || lead[1].Kind != token.TriviaNewline {
		t.Fatalf("unexpected leading trivia on first token: %+v", lead)
	}
	if lead[0].Text != "// header" {
		t.Errorf("comment text = %q", lead[0].Text)
	}
	var sawBlock bool
	for _, tv := range toks[4].Leading {
		if tv.Kind == token.TriviaBlockComment && tv.Text == "/* inline */" {
			sawBlock = true
		}
	}
	if !sawBlock {
		t.Errorf("block comment not attached to 'write': %+v", toks[4].Leading)
	}
	if toks[len(toks)-1].Leading != nil {
		t.Errorf("EOF must not carry trivia")
	}
}

func TestSpansMatchText(t *testing.T) {
	src := "f(a, b) {\n\treturn a + b.\n}\n"
	toks, _ := lexAll(t, src, false)
	for _, tok := range toks {
		if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span %v covers %q, text is %q", tok.Span, got, tok.Text)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"x = 1 # 2.", diag.LexUnknownChar},
		{"x = !a.", diag.LexUnknownChar},
		{"x = 12ab.", diag.LexBadNumber},
		{"x = 1. /* never closed", diag.LexUnterminatedBlockComment},
		{"x = a → b.", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		toks, bag := lexAll(t, tt.src, false)
		if !bag.HasErrors() {
			t.Errorf("%q: expected %s", tt.src, tt.code.ID())
			continue
		}
		if got := bag.Items()[0].Code; got != tt.code {
			t.Errorf("%q: got %s, want %s", tt.src, got.ID(), tt.code.ID())
		}
		if toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("%q: lexing must still reach EOF", tt.src)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("p.smr", []byte("read x."))), lexer.Options{})
	if p1, p2 := lx.Peek(), lx.Peek(); p1.Kind != token.KwRead || p2.Kind != token.KwRead {
		t.Fatalf("Peek must be idempotent: %v %v", p1.Kind, p2.Kind)
	}
	if n := lx.Next(); n.Kind != token.KwRead {
		t.Fatalf("Next after Peek = %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.Ident {
		t.Fatalf("expected ident, got %v", n.Kind)
	}
}

func TestTokenTooLong(t *testing.T) {
	toks, bag := lexAll(t, strings.Repeat("a", 5000)+" = 1.", false)
	if len(toks) != 2 || toks[0].Kind != token.Invalid || toks[1].Kind != token.EOF {
		t.Fatalf("expected Invalid then EOF, got %v", toks)
	}
	if first, _ := bag.FirstError(); first.Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", first.Code)
	}

	toks, bag = lexAll(t, strings.Repeat("b", 4096), false)
	if toks[0].Kind != token.Ident || bag.HasErrors() {
		t.Fatalf("token at the limit must be accepted")
	}
}
