package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smergiel/internal/driver"
	"smergiel/internal/observ"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] file.smr",
	Short: "Print the Java source generated for a Smergiel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmit,
}

func init() {
	emitCmd.Flags().String("class", "", "class name override")
	emitCmd.Flags().Bool("all-errors", false, "report every undeclared identifier instead of the first")
}

func runEmit(cmd *cobra.Command, args []string) error {
	res, err := emitOne(cmd, args[0])
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), res.Java)
	return err
}

// emitOne compiles path without the cache and prints diagnostics of a
// failed unit. Failures come back as a silent error.
func emitOne(cmd *cobra.Command, path string) (*driver.EmitResult, error) {
	if err := checkSourceFile(path); err != nil {
		return nil, err
	}
	className, err := cmd.Flags().GetString("class")
	if err != nil {
		return nil, err
	}
	allErrors, err := cmd.Flags().GetBool("all-errors")
	if err != nil {
		return nil, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	res, err := driver.Emit(cmd.Context(), path, driver.EmitOptions{
		ClassName:      className,
		ReportAll:      allErrors,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return nil, err
	}
	if timings {
		printTimingReport(cmd.ErrOrStderr(), res.Timing)
	}
	if res.Failed() {
		if err := printDiagnostics(cmd, cmd.ErrOrStderr(), res.Bag, res.FileSet); err != nil {
			return nil, err
		}
		return nil, &silentError{code: exitFailure, err: fmt.Errorf("%s: compilation failed", path)}
	}
	return res, nil
}

func printTimingReport(w io.Writer, report observ.Report) {
	for _, p := range report.Phases {
		if p.Note != "" {
			fmt.Fprintf(w, "%-8s %7.2f ms  %s\n", p.Name, p.DurationMS, p.Note)
			continue
		}
		fmt.Fprintf(w, "%-8s %7.2f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(w, "%-8s %7.2f ms\n", "total", report.TotalMS)
}
