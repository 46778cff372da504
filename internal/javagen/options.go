package javagen

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"smergiel/internal/diag"
)

type Options struct {
	// ClassName of the generated public class. Empty means "Main".
	ClassName string
	// ReportAll reports every unresolved identifier instead of stopping
	// at the first one.
	ReportAll bool
	// Reporter receives semantic diagnostics. May be nil.
	Reporter diag.Reporter
}

func (o Options) className() string {
	if o.ClassName == "" {
		return "Main"
	}
	return o.ClassName
}

// ClassNameFromPath derives the Java class name from a source path:
// the base name without ".smr", first letter upper-cased
// ("test.smr" -> "Test"). Characters Java does not accept in identifiers
// become '_' and a leading digit gets a '_' prefix.
func ClassNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "Main"
	}

	var b strings.Builder
	for i, r := range base {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}
