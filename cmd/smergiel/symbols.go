package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"smergiel/internal/source"
	"smergiel/internal/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.smr",
	Short: "Show the declaration and use tables of a Smergiel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	symbolsCmd.Flags().String("class", "", "class name override")
	symbolsCmd.Flags().Bool("all-errors", false, "report every undeclared identifier instead of the first")
}

// symbolRow is one key of the table; empty sites print as "-".
type symbolRow struct {
	Key      string `json:"key"`
	Declared string `json:"declared,omitempty"`
	DeclKind string `json:"decl_kind,omitempty"`
	LastUse  string `json:"last_use,omitempty"`
	UseKind  string `json:"use_kind,omitempty"`
}

func runSymbols(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	res, err := emitOne(cmd, args[0])
	if err != nil {
		return err
	}
	rows := symbolRows(res.Table, res.FileSet)
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return writeSymbolTable(cmd.OutOrStdout(), rows)
}

func symbolRows(table *symbols.Table, fs *source.FileSet) []symbolRow {
	if table == nil {
		return nil
	}
	keys := table.SortedKeys()
	rows := make([]symbolRow, 0, len(keys))
	for _, k := range keys {
		row := symbolRow{Key: string(k)}
		if site, ok := table.Declaration(k); ok {
			row.Declared = sitePosition(site, fs)
			row.DeclKind = site.Kind.String()
		}
		if site, ok := table.LatestUse(k); ok {
			row.LastUse = sitePosition(site, fs)
			row.UseKind = site.Kind.String()
		}
		rows = append(rows, row)
	}
	return rows
}

func sitePosition(site symbols.Site, fs *source.FileSet) string {
	if fs == nil || fs.Get(site.Span.File) == nil {
		return "?"
	}
	pos := fs.Position(site.Span)
	return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
}

func writeSymbolTable(w io.Writer, rows []symbolRow) error {
	header := [3]string{"KEY", "DECLARED", "LAST USE"}
	cells := make([][3]string, len(rows))
	widths := [3]int{}
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for i, r := range rows {
		cells[i] = [3]string{r.Key, joinSite(r.Declared, r.DeclKind), joinSite(r.LastUse, r.UseKind)}
		for j, c := range cells[i] {
			widths[j] = max(widths[j], runewidth.StringWidth(c))
		}
	}
	writeRow := func(cols [3]string) error {
		line := runewidth.FillRight(cols[0], widths[0]) + "  " +
			runewidth.FillRight(cols[1], widths[1]) + "  " + cols[2]
		_, err := fmt.Fprintln(w, strings.TrimRight(line, " "))
		return err
	}
	if err := writeRow(header); err != nil {
		return err
	}
	for _, c := range cells {
		if err := writeRow(c); err != nil {
			return err
		}
	}
	return nil
}

func joinSite(pos, kind string) string {
	if pos == "" {
		return "-"
	}
	return pos + " " + kind
}
