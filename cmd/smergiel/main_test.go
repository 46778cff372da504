package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smergiel/internal/buildpipeline"
	"smergiel/internal/driver"
)

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// execute runs the root command with fresh output buffers.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSplitLegacyArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		modes   []string
		path    string
		wantErr bool
	}{
		{name: "empty"},
		{name: "path only", args: []string{"test.smr"}, path: "test.smr"},
		{name: "jar", args: []string{"jar", "test.smr"}, modes: []string{"jar"}, path: "test.smr"},
		{name: "jar run", args: []string{"jar", "run", "test.smr"}, modes: []string{"jar", "run"}, path: "test.smr"},
		{name: "lone mode", args: []string{"run"}, modes: []string{"run"}},
		{name: "unknown mode", args: []string{"zip", "test.smr"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modes, path, err := splitLegacyArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if path != tt.path {
				t.Fatalf("path = %q, want %q", path, tt.path)
			}
			if len(modes) != len(tt.modes) {
				t.Fatalf("modes = %v, want %v", modes, tt.modes)
			}
			for _, m := range tt.modes {
				if !modes[m] {
					t.Fatalf("mode %q missing in %v", m, modes)
				}
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing path", errMissingPath, exitMissingPath},
		{"bad extension", fmt.Errorf("%w: a.txt", driver.ErrBadExtension), exitBadArgument},
		{"io", &driver.IOError{Path: "a.smr", Err: os.ErrNotExist}, exitIO},
		{"wrapped io", fmt.Errorf("build: %w", &driver.IOError{Path: "a.smr"}), exitIO},
		{"silent", &silentError{code: 3, err: errors.New("x")}, 3},
		{"compile failed", buildpipeline.ErrCompileFailed, exitFailure},
		{"other", errors.New("boom"), exitFailure},
	}
	for _, tt := range tests {
		if got := exitCodeFor(tt.err); got != tt.want {
			t.Errorf("%s: exitCodeFor = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	code := reportError(&buf, &driver.IOError{Path: "missing.smr", Err: os.ErrNotExist})
	if code != exitIO {
		t.Fatalf("code = %d", code)
	}
	if got := buf.String(); got != "I/O Error or file not found: \"missing.smr\"\n" {
		t.Fatalf("unexpected message %q", got)
	}

	buf.Reset()
	if code := reportError(&buf, &silentError{code: exitFailure, err: errors.New("x")}); code != exitFailure || buf.Len() != 0 {
		t.Fatalf("silent error printed %q with code %d", buf.String(), code)
	}
}

func TestClassicMessages(t *testing.T) {
	var buf bytes.Buffer
	sink := classicMessages(&buf)
	sink.OnEvent(buildpipeline.Event{Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusWorking})
	sink.OnEvent(buildpipeline.Event{Stage: buildpipeline.StagePackage, Status: buildpipeline.StatusWorking})
	sink.OnEvent(buildpipeline.Event{File: "a.smr", Stage: buildpipeline.StagePackage, Status: buildpipeline.StatusWorking})
	sink.OnEvent(buildpipeline.Event{Stage: buildpipeline.StageRun, Status: buildpipeline.StatusWorking})
	want := "building jar\nCOMPILATION SUCCESSFUL\n\nWelcome to Smergiel!\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintStageTimings(t *testing.T) {
	var timings buildpipeline.Timings
	timings.Set(buildpipeline.StageEmit, 2*time.Millisecond)
	timings.Set(buildpipeline.StageParse, time.Millisecond)
	var buf bytes.Buffer
	if err := printStageTimings(&buf, timings); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "parsed 1.0 ms\nemitted 2.0 ms\n" {
		t.Fatalf("unexpected timings %q", got)
	}
}

func TestBuildCommandWritesJava(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	path := writeSource(t, dir, "test.smr", "x = 1.\nwrite x.\n")

	stdout, _, err := execute(t, "build", "--ui", "off", "--no-cache", path)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(stdout, "COMPILATION SUCCESSFUL") {
		t.Fatalf("missing success line in %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Test.java"))
	if err != nil {
		t.Fatalf("Test.java not written: %v", err)
	}
	if !strings.Contains(string(data), "public class Test {") {
		t.Fatalf("unexpected java:\n%s", data)
	}
}

func TestBuildCommandErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	undeclared := writeSource(t, dir, "bad.smr", "write y.\n")

	_, stderr, err := execute(t, "build", "--ui", "off", "--no-cache", undeclared)
	if exitCodeFor(err) != exitFailure {
		t.Fatalf("exit code = %d (%v)", exitCodeFor(err), err)
	}
	if !strings.Contains(stderr, `Line 1:6 - Identifier "y" is not declared`) {
		t.Fatalf("missing legacy line in %q", stderr)
	}

	_, _, err = execute(t, "build", "--ui", "off", "--no-cache", filepath.Join(dir, "prog.txt"))
	if exitCodeFor(err) != exitBadArgument {
		t.Fatalf("bad extension: exit code = %d (%v)", exitCodeFor(err), err)
	}

	_, _, err = execute(t, "build", "--ui", "off", "--no-cache", filepath.Join(dir, "missing.smr"))
	if exitCodeFor(err) != exitIO {
		t.Fatalf("missing file: exit code = %d (%v)", exitCodeFor(err), err)
	}
}

func TestEmitCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "test.smr", "f(a) {\n\treturn a + 1.\n}\nwrite f(2).\n")

	stdout, _, err := execute(t, "emit", path)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if !strings.Contains(stdout, "public static double f(double a) {") {
		t.Fatalf("unexpected java:\n%s", stdout)
	}
}

func TestSymbolsTable(t *testing.T) {
	rows := []symbolRow{
		{Key: "main:x", Declared: "1:1", DeclKind: "assign", LastUse: "2:7", UseKind: "ident"},
		{Key: "main:y", LastUse: "3:7", UseKind: "ident"},
	}
	var buf bytes.Buffer
	if err := writeSymbolTable(&buf, rows); err != nil {
		t.Fatal(err)
	}
	want := "KEY     DECLARED    LAST USE\n" +
		"main:x  1:1 assign  2:7 ident\n" +
		"main:y  -           3:7 ident\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")
	stdout, _, err := execute(t, "init", dir)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for _, name := range []string{"smergiel.toml", "main.smr"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not created: %v", name, err)
		}
		if !strings.Contains(stdout, name) {
			t.Fatalf("%s not listed in %q", name, stdout)
		}
	}
	if _, _, err := execute(t, "init", dir); err == nil {
		t.Fatal("second init must fail")
	}
}
