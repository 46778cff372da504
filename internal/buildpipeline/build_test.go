package buildpipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"smergiel/internal/javagen"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) has(file string, stage Stage, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if ev.File == file && ev.Stage == stage && ev.Status == status {
			return true
		}
	}
	return false
}

func TestBuildWritesJavaNextToSource(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "hello.smr", "x = 1.\nwrite x.\n")
	sink := &recordingSink{}

	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: src, Progress: sink, BaseDir: dir},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := filepath.Join(dir, "Hello.java")
	if len(res.JavaFiles) != 1 || res.JavaFiles[0] != want {
		t.Fatalf("JavaFiles = %v, want [%s]", res.JavaFiles, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "public class Hello {") {
		t.Fatalf("unexpected java:\n%s", data)
	}
	for _, st := range []Stage{StageParse, StageEmit, StageWrite} {
		if !res.Timings.Has(st) {
			t.Errorf("no timing for %s", st)
		}
	}
	if res.Timings.Has(StageCompile) {
		t.Error("javac must not run without --jar/--run")
	}
	if !sink.has("hello.smr", StageParse, StatusQueued) || !sink.has("hello.smr", StageEmit, StatusDone) || !sink.has("hello.smr", StageWrite, StatusDone) {
		t.Fatalf("missing progress events: %+v", sink.events)
	}
}

func TestBuildOutDirAndClassOverride(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.smr", "read a.\nwrite a.\n")
	out := filepath.Join(dir, "out", "java")

	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: src, ClassName: "Calc"},
		OutDir:         out,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := res.JavaFiles[0]; got != filepath.Join(out, "Calc.java") {
		t.Fatalf("java path = %s", got)
	}
}

func TestBuildStopsOnUndeclared(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "bad.smr", "write y.\n")
	sink := &recordingSink{}

	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: src, Progress: sink, BaseDir: dir},
	})
	if !errors.Is(err, ErrCompileFailed) {
		t.Fatalf("expected ErrCompileFailed, got %v", err)
	}
	if len(res.JavaFiles) != 0 {
		t.Fatal("nothing may be written when compilation fails")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "Bad.java")); !os.IsNotExist(statErr) {
		t.Fatalf("Bad.java must not exist: %v", statErr)
	}
	var unresolved *javagen.UnresolvedError
	if len(res.Units) != 1 || !errors.As(res.Units[0].Err, &unresolved) {
		t.Fatalf("unit must carry the unresolved error")
	}
	if !sink.has("bad.smr", StageEmit, StatusError) {
		t.Fatalf("missing error event: %+v", sink.events)
	}
}

func TestBuildDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "one.smr", "write 1.\n")
	writeSource(t, dir, "two.smr", "write 2.\n")
	out := filepath.Join(dir, "out")

	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: dir, Jobs: 2},
		OutDir:         out,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{filepath.Join(out, "One.java"), filepath.Join(out, "Two.java")}
	if strings.Join(res.JavaFiles, ",") != strings.Join(want, ",") {
		t.Fatalf("JavaFiles = %v", res.JavaFiles)
	}
}

func TestBuildDirectoryClassClash(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.smr", "write 1.\n")
	writeSource(t, dir, "sub/a.smr", "write 2.\n")
	_, err := Compile(context.Background(), &CompileRequest{TargetPath: dir})
	if err == nil || !strings.Contains(err.Error(), "both produce class A") {
		t.Fatalf("expected class clash error, got %v", err)
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	_, err := Compile(context.Background(), &CompileRequest{TargetPath: t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "no .smr files") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildMissingJDK(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "jar.smr", "write 1.\n")
	t.Setenv("PATH", t.TempDir())

	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: src},
		Jar:            true,
	})
	var missing *ToolNotFoundError
	if !errors.As(err, &missing) || missing.Tool != "javac" {
		t.Fatalf("expected missing javac, got %v", err)
	}
	if len(res.JavaFiles) != 1 {
		t.Fatal("Java source must be written before javac runs")
	}
}

func TestRunNeedsSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.smr", "write 1.\n")
	writeSource(t, dir, "b.smr", "write 2.\n")
	_, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: dir},
		OutDir:         filepath.Join(dir, "out"),
		Run:            true,
	})
	if err == nil || !strings.Contains(err.Error(), "exactly one source file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimingsRecorded(t *testing.T) {
	var tm Timings
	tm.Set(StageRun, 3)
	tm.Add(StageParse, 1)
	tm.Add(StageParse, 1)
	if tm.Duration(StageParse) != 2 || tm.Sum(StageParse, StageRun) != 5 {
		t.Fatalf("unexpected durations")
	}
	got := tm.Recorded()
	if len(got) != 2 || got[0] != StageParse || got[1] != StageRun {
		t.Fatalf("Recorded() = %v", got)
	}
}
