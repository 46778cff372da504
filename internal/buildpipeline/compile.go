package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"smergiel/internal/driver"
	"smergiel/internal/trace"
)

// ErrCompileFailed is returned when at least one unit has syntax or
// semantic errors. The units carry the details.
var ErrCompileFailed = errors.New("compilation failed")

// CompileRequest configures the shared compilation pipeline.
type CompileRequest struct {
	// TargetPath is a .smr file or a directory of .smr files.
	TargetPath string
	// ClassName overrides the class of a single-file build.
	ClassName      string
	ReportAll      bool
	MaxDiagnostics int
	Jobs           int
	Cache          *driver.EmitCache
	Timings        bool
	Progress       ProgressSink
	// BaseDir is used to shorten file names in progress events.
	BaseDir string
}

// CompileResult captures generated units and stage timings.
type CompileResult struct {
	Units   []*driver.EmitResult
	Timings Timings
}

// Failed returns the units with errors.
func (r CompileResult) Failed() []*driver.EmitResult {
	var out []*driver.EmitResult
	for _, u := range r.Units {
		if u != nil && u.Failed() {
			out = append(out, u)
		}
	}
	return out
}

// Compile parses and emits the target. Load failures are returned as is;
// syntax or semantic errors yield ErrCompileFailed with all units filled.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	if req.TargetPath == "" {
		return result, fmt.Errorf("missing target path")
	}

	info, err := os.Stat(req.TargetPath)
	if err != nil {
		return result, &driver.IOError{Path: req.TargetPath, Err: err}
	}

	observer := &phaseObserver{sink: req.Progress, baseDir: req.BaseDir, timings: &result.Timings}
	opts := driver.EmitOptions{
		ClassName:      req.ClassName,
		ReportAll:      req.ReportAll,
		MaxDiagnostics: req.MaxDiagnostics,
		Cache:          req.Cache,
		Observer:       observer.OnPhase,
		Timings:        req.Timings,
	}

	if info.IsDir() {
		files, err := driver.ListSourceFiles(req.TargetPath)
		if err != nil {
			return result, err
		}
		if len(files) == 0 {
			return result, fmt.Errorf("no .smr files in %s", req.TargetPath)
		}
		display := make([]string, len(files))
		for i, f := range files {
			display[i] = DisplayPath(f, req.BaseDir)
		}
		emitQueued(req.Progress, display)
		result.Units, err = driver.EmitDir(ctx, req.TargetPath, opts, req.Jobs)
		if err != nil {
			emitStage(req.Progress, nil, StageParse, StatusError, err, 0)
			return result, err
		}
	} else {
		emitQueued(req.Progress, []string{DisplayPath(req.TargetPath, req.BaseDir)})
		unit, err := driver.Emit(ctx, req.TargetPath, opts)
		if err != nil {
			emitStage(req.Progress, nil, StageParse, StatusError, err, 0)
			return result, err
		}
		result.Units = []*driver.EmitResult{unit}
	}

	if err := checkClassClash(result.Units); err != nil {
		return result, err
	}

	failed := result.Failed()
	for _, u := range failed {
		stage := StageEmit
		if u.Bag.HasErrors() && u.Err == nil {
			stage = StageParse
		}
		emitStage(req.Progress, []string{DisplayPath(u.Path, req.BaseDir)}, stage, StatusError, unitError(u), 0)
	}
	if len(failed) > 0 {
		trace.Point(trace.FromContext(ctx), trace.ScopeStage, "compile", fmt.Sprintf("%d failed", len(failed)), trace.CurrentSpanID(ctx))
		return result, ErrCompileFailed
	}
	return result, nil
}

// unitError returns the most specific error of a failed unit.
func unitError(u *driver.EmitResult) error {
	if u.Err != nil {
		return u.Err
	}
	if d, ok := u.Bag.FirstError(); ok {
		return errors.New(d.Message)
	}
	return ErrCompileFailed
}

// checkClassClash rejects directory builds where two files map to the
// same Java class ("a.smr" and "sub/a.smr").
func checkClassClash(units []*driver.EmitResult) error {
	seen := make(map[string]string, len(units))
	for _, u := range units {
		if u == nil {
			continue
		}
		if prev, ok := seen[u.ClassName]; ok {
			return fmt.Errorf("%s and %s both produce class %s", prev, u.Path, u.ClassName)
		}
		seen[u.ClassName] = u.Path
	}
	return nil
}

// javaPath returns where the unit's Java source is written: next to the
// source, or in outDir when set.
func javaPath(u *driver.EmitResult, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(u.Path)
	}
	return filepath.Join(dir, u.ClassName+".java")
}
