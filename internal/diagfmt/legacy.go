package diagfmt

import (
	"fmt"
	"io"

	"smergiel/internal/diag"
	"smergiel/internal/source"
)

// Legacy prints one line per diagnostic of at least minSev:
//
//	Line <line>:<col> - <message>
//
// This is the classic compiler output: line is 1-based, col is the 0-based
// character column. For an undeclared name it reads
// `Line 3:6 - Identifier "y" is not declared`.
func Legacy(w io.Writer, bag *diag.Bag, fs *source.FileSet, minSev diag.Severity) {
	for _, d := range bag.Items() {
		if d.Severity < minSev {
			continue
		}
		var (
			pos source.LineCol
			col uint32
		)
		if fs != nil && fs.Get(d.Primary.File) != nil {
			pos = fs.Position(d.Primary)
			col = fs.CharColumn(d.Primary)
		}
		fmt.Fprintf(w, "Line %d:%d - %s\n", pos.Line, col, diag.SanitizeMessage(d.Message))
	}
}
