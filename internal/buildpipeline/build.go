// Package buildpipeline runs a smergiel build: parse, emit, write the Java
// sources, then optionally javac, jar and java.
package buildpipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"smergiel/internal/driver"
	"smergiel/internal/trace"
)

// BuildRequest configures output generation for a compilation.
type BuildRequest struct {
	CompileRequest
	// OutDir receives <Class>.java, classes/ and <Class>.jar.
	// Empty means next to each source file.
	OutDir        string
	Jar           bool
	Run           bool
	PrintCommands bool
	// KeepClasses leaves the classes directory after packaging a jar.
	KeepClasses bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	Units      []*driver.EmitResult
	JavaFiles  []string
	ClassesDir string
	JarPath    string
	Timings    Timings
}

// Build compiles the target to Java and runs the requested JDK tools.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	reqCopy := *req
	req = &reqCopy
	if req.Stdout == nil {
		req.Stdout = os.Stdout
	}
	if req.Stderr == nil {
		req.Stderr = os.Stderr
	}
	if req.Stdin == nil {
		req.Stdin = os.Stdin
	}

	compileRes, err := Compile(ctx, &req.CompileRequest)
	result.Units = compileRes.Units
	result.Timings = compileRes.Timings
	if err != nil {
		return result, err
	}

	files := make([]string, len(result.Units))
	for i, u := range result.Units {
		files[i] = DisplayPath(u.Path, req.BaseDir)
	}

	writeStart := time.Now()
	emitStage(req.Progress, files, StageWrite, StatusWorking, nil, 0)
	result.JavaFiles, err = writeUnits(ctx, result.Units, req.OutDir)
	if err != nil {
		emitStage(req.Progress, files, StageWrite, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageWrite, time.Since(writeStart))
	emitStage(req.Progress, files, StageWrite, StatusDone, nil, result.Timings.Duration(StageWrite))

	if !req.Jar && !req.Run {
		return result, nil
	}
	if req.Run && len(result.Units) != 1 {
		err := fmt.Errorf("run needs exactly one source file, got %d", len(result.Units))
		emitStage(req.Progress, nil, StageRun, StatusError, err, 0)
		return result, err
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = filepath.Dir(result.JavaFiles[0])
	}
	result.ClassesDir = filepath.Join(outDir, "classes")
	tools := toolRunner{ctx: ctx, print: req.PrintCommands, stdout: req.Stdout, stderr: req.Stderr}

	if err := runStage(ctx, req, &result, files, StageCompile, func() error {
		if err := os.MkdirAll(result.ClassesDir, 0o750); err != nil {
			return &driver.IOError{Path: result.ClassesDir, Err: err}
		}
		args := append([]string{"-d", result.ClassesDir}, result.JavaFiles...)
		return tools.run("javac", args...)
	}); err != nil {
		return result, err
	}

	mainClass := result.Units[0].ClassName
	if req.Jar {
		result.JarPath = filepath.Join(outDir, mainClass+".jar")
		if err := runStage(ctx, req, &result, files, StagePackage, func() error {
			return tools.run("jar", "cfe", result.JarPath, mainClass, "-C", result.ClassesDir, ".")
		}); err != nil {
			return result, err
		}
	}

	if req.Run {
		runTools := tools
		runTools.stdin = req.Stdin
		if err := runStage(ctx, req, &result, files, StageRun, func() error {
			if result.JarPath != "" {
				return runTools.run("java", "-jar", result.JarPath)
			}
			return runTools.run("java", "-cp", result.ClassesDir, mainClass)
		}); err != nil {
			return result, err
		}
	}

	if req.Jar && !req.KeepClasses {
		if err := os.RemoveAll(result.ClassesDir); err != nil {
			return result, fmt.Errorf("failed to clean classes dir: %w", err)
		}
		result.ClassesDir = ""
	}
	return result, nil
}

func runStage(ctx context.Context, req *BuildRequest, result *BuildResult, files []string, stage Stage, fn func() error) error {
	_, span := trace.StartSpan(ctx, trace.ScopeStage, string(stage))
	defer span.End("")

	start := time.Now()
	emitStage(req.Progress, files, stage, StatusWorking, nil, 0)
	if err := fn(); err != nil {
		emitStage(req.Progress, files, stage, StatusError, err, 0)
		return err
	}
	result.Timings.Set(stage, time.Since(start))
	emitStage(req.Progress, files, stage, StatusDone, nil, result.Timings.Duration(stage))
	return nil
}

// writeUnits writes every unit's Java source and returns the paths.
func writeUnits(ctx context.Context, units []*driver.EmitResult, outDir string) ([]string, error) {
	_, span := trace.StartSpan(ctx, trace.ScopeStage, string(StageWrite))
	defer span.End("")

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return nil, &driver.IOError{Path: outDir, Err: err}
		}
	}
	paths := make([]string, 0, len(units))
	for _, u := range units {
		path := javaPath(u, outDir)
		if err := os.WriteFile(path, []byte(u.Java), 0o600); err != nil {
			return paths, &driver.IOError{Path: path, Err: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type toolRunner struct {
	ctx    context.Context
	print  bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// ToolNotFoundError marks a missing JDK executable.
type ToolNotFoundError struct{ Tool string }

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found; install a JDK (e.g. sudo apt-get install -y default-jdk) and make sure it is on PATH", e.Tool)
}

func ensureToolAvailable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ToolNotFoundError{Tool: name}
	}
	return path, nil
}

func (r toolRunner) run(name string, args ...string) error {
	bin, err := ensureToolAvailable(name)
	if err != nil {
		return err
	}
	if r.print {
		if _, err := fmt.Fprintf(r.stdout, "%s %s\n", name, strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to print command: %w", err)
		}
	}
	cmd := exec.CommandContext(r.ctx, bin, args...)
	cmd.Stdout = r.stdout
	// интерактивный запуск: stderr программы идёт пользователю напрямую
	if r.stdin != nil {
		cmd.Stdin = r.stdin
		cmd.Stderr = r.stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %s", name, msg)
	}
	return nil
}
