package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexBadNumber                Code = 1003
	LexTokenTooLong             Code = 1004

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectExpression Code = 2003
	SynExpectDot        Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006
	SynReturnNotLast    Code = 2007
	SynExpectCompareOp  Code = 2008
	SynTooManyErrors    Code = 2009

	// Семантические
	SemaInfo               Code = 3000
	SemaUndeclaredIdent    Code = 3001
	SemaDuplicateMethod    Code = 3002
	SemaUnknownLogicalOp   Code = 3003
	SemaReturnInEntryPoint Code = 3004
	SemaDuplicateParam     Code = 3005
	SemaReservedName       Code = 3006
	SemaUnreachableCode    Code = 3007

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Ошибки проекта
	ProjMissingPath     Code = 5001
	ProjBadExtension    Code = 5002
	ProjInvalidManifest Code = 5003

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	LexTokenTooLong:             "Token too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectDot:                "Expected '.' to end the statement",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynReturnNotLast:            "Return must be the last statement of a block",
	SynExpectCompareOp:          "Expected comparison operator",
	SynTooManyErrors:            "Too many syntax errors",
	SemaInfo:                    "Semantic information",
	SemaUndeclaredIdent:         "Identifier is not declared",
	SemaDuplicateMethod:         "Duplicate method signature",
	SemaUnknownLogicalOp:        "Unknown logical operator",
	SemaReturnInEntryPoint:      "Return value ignored in entry point",
	SemaDuplicateParam:          "Duplicate parameter name",
	SemaReservedName:            "Name is reserved in the generated Java",
	SemaUnreachableCode:         "Code after an if/else that always returns",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	ProjMissingPath:             "Missing source path",
	ProjBadExtension:            "Source file must have the .smr extension",
	ProjInvalidManifest:         "Invalid project manifest",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Phase timings",
}

// ID returns the stable textual identifier, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
