package token

import (
	"smergiel/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool { return t.Kind == Number }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Assign, Operator, CompareOp, LogicalOp,
		LParen, RParen, LBrace, RBrace, Comma, Dot:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwElse, KwRead, KwWrite, KwReturn:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// StartsStatement reports whether the token can open a statement.
// The parser uses it to resynchronise after an error.
func (t Token) StartsStatement() bool {
	switch t.Kind {
	case Ident, KwIf, KwRead, KwWrite, KwReturn:
		return true
	default:
		return false
	}
}
