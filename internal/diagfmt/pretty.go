package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"smergiel/internal/diag"
	"smergiel/internal/source"
)

type palette struct {
	err, warn, info, note, code, path, gutter, caret func(a ...any) string
}

func newPalette(on bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		if !on {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		note:   mk(color.FgBlue, color.Bold),
		code:   mk(color.Faint),
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.err(sev.String())
	case diag.SevWarning:
		return p.warn(sev.String())
	default:
		return p.info(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity), pal.code(d.Code.ID()), d.Message)
			continue
		}
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pal.path(formatPath(f, fs, opts.PathMode)), start.Line, start.Col,
			pal.severity(d.Severity), pal.code(d.Code.ID()), d.Message)
		writeSnippet(w, fs, f, d.Primary, opts, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			if nf == nil {
				fmt.Fprintf(w, "  %s: %s\n", pal.note("note"), n.Msg)
				continue
			}
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", pal.note("note"),
				formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
			writeSnippet(w, fs, nf, n.Span, opts, pal)
		}
	}
}

func writeSnippet(w io.Writer, fs *source.FileSet, f *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	start, end := fs.Resolve(sp)
	first := int64(start.Line) - int64(max(opts.Context, 0))
	if first < 1 {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for n := uint32(first); n <= start.Line; n++ {
		line := clip(f.GetLine(n), opts.Width)
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter(fmt.Sprintf("%*d", gutterWidth, n)), pal.gutter("|"), line)
	}

	line := f.GetLine(start.Line)
	prefix := sliceCols(line, 1, start.Col)
	var marked string
	if end.Line == start.Line && end.Col > start.Col {
		marked = sliceCols(line, start.Col, end.Col)
	} else {
		marked = sliceCols(line, start.Col, uint32(len(line))+1)
	}
	width := max(runewidth.StringWidth(marked), 1)
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s %s%s\n", strings.Repeat(" ", gutterWidth), pal.gutter("|"), padLike(prefix), pal.caret(underline))
}

// sliceCols returns line[from-1 : to-1] in byte columns, clamped.
func sliceCols(line string, from, to uint32) string {
	n := uint32(len(line))
	lo, hi := min(from-1, n), min(to-1, n)
	if from == 0 {
		lo = 0
	}
	if hi < lo {
		return ""
	}
	return line[lo:hi]
}

// padLike replaces every printable rune of s by spaces of the same display
// width and keeps tabs, so the caret lines up under the source.
func padLike(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func clip(line string, width uint8) string {
	if width == 0 || runewidth.StringWidth(line) <= int(width) {
		return line
	}
	return runewidth.Truncate(line, int(width), "…")
}
