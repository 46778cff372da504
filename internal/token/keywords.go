package token

var keywords = map[string]Kind{
	"if":     KwIf,
	"else":   KwElse,
	"read":   KwRead,
	"write":  KwWrite,
	"return": KwReturn,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
