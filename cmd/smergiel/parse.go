package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smergiel/internal/diagfmt"
	"smergiel/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.smr",
	Short: "Parse a Smergiel source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	if err := checkSourceFile(filePath); err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(cmd.Context(), filePath, maxDiagnostics)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, cmd.ErrOrStderr(), result.Bag, result.FileSet); err != nil {
		return err
	}

	// дерево печатаем и при ошибках: парсер восстанавливается
	if format == "json" {
		err = diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Program)
	} else {
		err = diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Program, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return &silentError{code: exitFailure, err: fmt.Errorf("%s: syntax errors", filePath)}
	}
	return nil
}
