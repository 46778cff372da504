package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number is an unsigned decimal literal, optionally with a fraction.
	Number

	KwIf     // if
	KwElse   // else
	KwRead   // read
	KwWrite  // write
	KwReturn // return

	Assign    // =
	Operator  // + - * / %
	CompareOp // == != < <= > >=
	LogicalOp // & && | ||

	LParen // (
	RParen // )
	LBrace // {
	RBrace // }
	Comma  // ,
	Dot    // .
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Number:    "Number",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwRead:    "KwRead",
	KwWrite:   "KwWrite",
	KwReturn:  "KwReturn",
	Assign:    "Assign",
	Operator:  "Operator",
	CompareOp: "CompareOp",
	LogicalOp: "LogicalOp",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Comma:     "Comma",
	Dot:       "Dot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns a user-facing spelling for parser messages.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case KwIf:
		return "'if'"
	case KwElse:
		return "'else'"
	case KwRead:
		return "'read'"
	case KwWrite:
		return "'write'"
	case KwReturn:
		return "'return'"
	case Assign:
		return "'='"
	case Operator:
		return "operator"
	case CompareOp:
		return "comparison operator"
	case LogicalOp:
		return "logical operator"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Comma:
		return "','"
	case Dot:
		return "'.'"
	}
	return "invalid token"
}
