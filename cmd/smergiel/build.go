package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"smergiel/internal/buildpipeline"
	"smergiel/internal/driver"
)

const (
	msgCompilationOK = "COMPILATION SUCCESSFUL"
	msgBuildingJar   = "building jar"
	msgWelcome       = "\nWelcome to Smergiel!\n"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [jar] [run] [path]",
	Short: "Compile Smergiel sources to Java",
	Long: `Build compiles a .smr file (or every .smr file in a directory) to <Class>.java.
With --jar the classes are compiled with javac and packaged into <Class>.jar;
with --run the program is started with java. Without a path the target is read
from smergiel.toml. The classic form "smergiel build jar run file.smr" is accepted.`,
	Args: cobra.MaximumNArgs(3),
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().Bool("jar", false, "compile with javac and package a runnable jar")
	buildCmd.Flags().Bool("run", false, "run the program after building")
	buildCmd.Flags().String("out", "", "output directory (default: next to the source)")
	buildCmd.Flags().String("class", "", "class name override (single file only)")
	buildCmd.Flags().Bool("all-errors", false, "report every undeclared identifier instead of the first")
	buildCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
	buildCmd.Flags().Int("jobs", 0, "max parallel workers for directory builds (0=auto)")
	buildCmd.Flags().Bool("no-cache", false, "disable the emission cache")
	buildCmd.Flags().Bool("print-commands", false, "print javac/jar/java command lines")
	buildCmd.Flags().Bool("keep-classes", false, "keep the classes directory after packaging")
}

type buildFlags struct {
	jar, run, allErrors, noCache, printCommands, keepClasses bool
	out, class, ui                                          string
	jobs                                                    int
}

func readBuildFlags(cmd *cobra.Command) (buildFlags, error) {
	var (
		f   buildFlags
		err error
	)
	flags := cmd.Flags()
	if f.jar, err = flags.GetBool("jar"); err != nil {
		return f, err
	}
	if f.run, err = flags.GetBool("run"); err != nil {
		return f, err
	}
	if f.allErrors, err = flags.GetBool("all-errors"); err != nil {
		return f, err
	}
	if f.noCache, err = flags.GetBool("no-cache"); err != nil {
		return f, err
	}
	if f.printCommands, err = flags.GetBool("print-commands"); err != nil {
		return f, err
	}
	if f.keepClasses, err = flags.GetBool("keep-classes"); err != nil {
		return f, err
	}
	if f.out, err = flags.GetString("out"); err != nil {
		return f, err
	}
	if f.class, err = flags.GetString("class"); err != nil {
		return f, err
	}
	if f.ui, err = flags.GetString("ui"); err != nil {
		return f, err
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, err
	}
	return f, nil
}

func buildExecution(cmd *cobra.Command, args []string) error {
	flags, err := readBuildFlags(cmd)
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(flags.ui)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	modes, path, err := splitLegacyArgs(args)
	if err != nil {
		return err
	}
	target, err := resolveBuildTarget(path)
	if err != nil {
		return err
	}
	// флаги важнее манифеста
	target.jar = target.jar || flags.jar || modes["jar"]
	target.run = target.run || flags.run || modes["run"]
	if cmd.Flags().Changed("out") || !target.fromFile {
		target.outDir = flags.out
	}
	if cmd.Flags().Changed("class") || !target.fromFile {
		target.className = flags.class
	}

	stdout := cmd.OutOrStdout()
	req := buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{
			TargetPath:     target.path,
			ClassName:      target.className,
			ReportAll:      flags.allErrors,
			MaxDiagnostics: maxDiagnostics,
			Jobs:           flags.jobs,
			Cache:          openEmitCache(flags.noCache),
			BaseDir:        target.baseDir,
		},
		OutDir:        target.outDir,
		Jar:           target.jar,
		Run:           target.run,
		PrintCommands: flags.printCommands,
		KeepClasses:   flags.keepClasses,
		Stdin:         cmd.InOrStdin(),
		Stdout:        stdout,
		Stderr:        cmd.ErrOrStderr(),
	}

	// интерактивной программе нужен терминал без TUI
	useTUI := shouldUseTUI(uiModeValue) && !target.run && !quiet
	var res buildpipeline.BuildResult
	if useTUI {
		files, listErr := listTargetFiles(target.path)
		if listErr != nil {
			return listErr
		}
		display := make([]string, len(files))
		for i, f := range files {
			display[i] = buildpipeline.DisplayPath(f, target.baseDir)
		}
		res, err = runBuildWithUI(cmd.Context(), "smergiel build", display, &req)
	} else {
		if !quiet {
			req.Progress = classicMessages(stdout)
		}
		res, err = buildpipeline.Build(cmd.Context(), &req)
	}

	if printErr := reportFailedUnits(cmd, res.Units); printErr != nil {
		return printErr
	}
	if timings {
		if printErr := printStageTimings(stdout, res.Timings); printErr != nil {
			return printErr
		}
	}
	if err != nil {
		return classifyBuildError(err)
	}
	if !quiet && !target.run {
		fmt.Fprintln(stdout, msgCompilationOK)
	}
	return nil
}

// classicMessages prints the compiler's historical progress lines.
func classicMessages(w io.Writer) buildpipeline.ProgressSink {
	return buildpipeline.FuncSink(func(ev buildpipeline.Event) {
		if ev.File != "" || ev.Status != buildpipeline.StatusWorking {
			return
		}
		switch ev.Stage {
		case buildpipeline.StagePackage:
			fmt.Fprintln(w, msgBuildingJar)
		case buildpipeline.StageRun:
			fmt.Fprintln(w, msgCompilationOK)
			fmt.Fprintln(w, msgWelcome)
		}
	})
}

// reportFailedUnits prints diagnostics of every failed unit to stderr.
func reportFailedUnits(cmd *cobra.Command, units []*driver.EmitResult) error {
	for _, u := range units {
		if u == nil || !u.Failed() {
			continue
		}
		if err := printDiagnostics(cmd, cmd.ErrOrStderr(), u.Bag, u.FileSet); err != nil {
			return err
		}
	}
	return nil
}

// classifyBuildError makes compile failures silent: their diagnostics
// were already printed.
func classifyBuildError(err error) error {
	if errors.Is(err, buildpipeline.ErrCompileFailed) {
		return &silentError{code: exitFailure, err: err}
	}
	return err
}

// listTargetFiles returns the files a build of path will compile.
func listTargetFiles(path string) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, &driver.IOError{Path: path, Err: err}
	}
	if !st.IsDir() {
		return []string{path}, nil
	}
	return driver.ListSourceFiles(path)
}
