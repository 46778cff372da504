package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smergiel/internal/diag"
	"smergiel/internal/diagfmt"
	"smergiel/internal/source"
)

type diagFormat string

const (
	diagFormatLegacy diagFormat = "legacy"
	diagFormatPretty diagFormat = "pretty"
	diagFormatJSON   diagFormat = "json"
)

func readDiagFormat(cmd *cobra.Command) (diagFormat, error) {
	value, err := cmd.Root().PersistentFlags().GetString("diag-format")
	if err != nil {
		return "", fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch diagFormat(value) {
	case diagFormatLegacy, diagFormatPretty, diagFormatJSON:
		return diagFormat(value), nil
	default:
		return "", fmt.Errorf("invalid --diag-format value %q (expected legacy|pretty|json)", value)
	}
}

// printDiagnostics renders bag to w. Info diagnostics (timings) are only
// printed by the pretty and json renderers.
func printDiagnostics(cmd *cobra.Command, w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	format, err := readDiagFormat(cmd)
	if err != nil {
		return err
	}
	switch format {
	case diagFormatJSON:
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case diagFormatPretty:
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)),
			Context:   1,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		})
	default:
		diagfmt.Legacy(w, bag, fs, diag.SevWarning)
	}
	return nil
}
