package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smergiel/internal/diag"
	"smergiel/internal/javagen"
	"smergiel/internal/token"
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

func TestEmitSuccess(t *testing.T) {
	path := writeSource(t, t.TempDir(), "test.smr", "x = 1.\nwrite x.\n")
	res, err := Emit(context.Background(), path, EmitOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if res.Failed() {
		t.Fatalf("unexpected failure: %v %v", res.Err, res.Bag.Items())
	}
	if res.ClassName != "Test" {
		t.Fatalf("class = %q", res.ClassName)
	}
	if !strings.Contains(res.Java, "public class Test {") || !strings.Contains(res.Java, "\t\tdouble x = 1;\n") {
		t.Fatalf("unexpected java:\n%s", res.Java)
	}
	if res.Table == nil || !res.Table.IsDeclared("main:x") {
		t.Fatal("symbol table missing main:x")
	}
	if res.FromCache {
		t.Fatal("no cache configured")
	}
}

func TestEmitUndeclared(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.smr", "x = 1.\nwrite y.\n")
	res, err := Emit(context.Background(), path, EmitOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	var unresolved *javagen.UnresolvedError
	if !errors.As(res.Err, &unresolved) {
		t.Fatalf("expected unresolved error, got %v", res.Err)
	}
	if got := unresolved.Error(); got != `Line 2:6 - Identifier "y" is not declared` {
		t.Fatalf("error = %q", got)
	}
	if res.Bag.Count(diag.SevError) != 1 {
		t.Fatalf("expected one error diagnostic, got %d", res.Bag.Count(diag.SevError))
	}
}

func TestEmitSyntaxError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "syn.smr", "x = .\n")
	res, err := Emit(context.Background(), path, EmitOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !res.Bag.HasErrors() || res.Java != "" || res.Err != nil {
		t.Fatalf("syntax errors must stop before emission: java=%q err=%v", res.Java, res.Err)
	}
}

func TestEmitLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Emit(context.Background(), filepath.Join(dir, "prog.txt"), EmitOptions{}); !errors.Is(err, ErrBadExtension) {
		t.Fatalf("expected ErrBadExtension, got %v", err)
	}
	_, err := Emit(context.Background(), filepath.Join(dir, "missing.smr"), EmitOptions{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected IOError wrapping ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "I/O Error or file not found: ") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestEmitCache(t *testing.T) {
	disk, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, t.TempDir(), "cached.smr", "read a.\nwrite a.\n")

	first, err := Emit(context.Background(), path, EmitOptions{Cache: NewEmitCache(disk)})
	if err != nil || first.Failed() || first.FromCache {
		t.Fatalf("first run: err=%v failed=%v cache=%v", err, first.Failed(), first.FromCache)
	}

	// новый EmitCache: попадание должно прийти с диска
	second, err := Emit(context.Background(), path, EmitOptions{Cache: NewEmitCache(disk)})
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache || second.Java != first.Java || second.Program != nil {
		t.Fatalf("expected disk cache hit with identical java")
	}

	other, err := Emit(context.Background(), path, EmitOptions{Cache: NewEmitCache(disk), ClassName: "Other"})
	if err != nil {
		t.Fatal(err)
	}
	if other.FromCache || !strings.Contains(other.Java, "public class Other {") {
		t.Fatal("class name must be part of the cache key")
	}

	if err := disk.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	third, err := Emit(context.Background(), path, EmitOptions{Cache: NewEmitCache(disk)})
	if err != nil || third.FromCache {
		t.Fatalf("cache must be empty after DropAll: %v", err)
	}
}

func TestEmitDoesNotCacheFailures(t *testing.T) {
	disk, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, t.TempDir(), "bad.smr", "write nope.\n")
	for range 2 {
		res, err := Emit(context.Background(), path, EmitOptions{Cache: NewEmitCache(disk)})
		if err != nil {
			t.Fatal(err)
		}
		if res.FromCache || res.Err == nil {
			t.Fatalf("failed emission must not be cached")
		}
	}
}

func TestEmitTimingsAndObserver(t *testing.T) {
	path := writeSource(t, t.TempDir(), "t.smr", "x = 2.\n")
	var events []string
	res, err := Emit(context.Background(), path, EmitOptions{
		Timings: true,
		Observer: func(ev PhaseEvent) {
			if ev.Status == PhaseEnd {
				events = append(events, ev.Name)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(events, ",") != "load,parse,emit" {
		t.Fatalf("phases = %v", events)
	}
	var found bool
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings && len(d.Notes) == 1 && strings.Contains(d.Notes[0].Msg, `"kind":"emit"`) {
			found = true
		}
	}
	if !found || res.Bag.HasErrors() {
		t.Fatalf("missing timing diagnostic: %v", res.Bag.Items())
	}
}

func TestEmitDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.smr", "write 2.\n")
	writeSource(t, dir, "a.smr", "write 1.\n")
	writeSource(t, dir, "sub/c.smr", "write z.\n")
	writeSource(t, dir, "notes.txt", "ignored")

	results, err := EmitDir(context.Background(), dir, EmitOptions{ClassName: "Ignored"}, 2)
	if err != nil {
		t.Fatalf("EmitDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantClasses := []string{"A", "B", "C"}
	for i, res := range results {
		if res.ClassName != wantClasses[i] {
			t.Errorf("results[%d].ClassName = %q, want %q", i, res.ClassName, wantClasses[i])
		}
	}
	if results[0].Failed() || results[1].Failed() || !results[2].Failed() {
		t.Fatal("only sub/c.smr should fail")
	}
}

func TestEmitDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.smr", "write 1.\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := EmitDir(ctx, dir, EmitOptions{}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	path := writeSource(t, t.TempDir(), "p.smr", "// hi\nread n.\n")
	tr, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Tokens) != 4 || tr.Tokens[0].Kind != token.KwRead || len(tr.Tokens[0].Leading) == 0 {
		t.Fatalf("unexpected tokens: %+v", tr.Tokens)
	}

	pr, err := Parse(context.Background(), path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if pr.Bag.HasErrors() || len(pr.Program.Body.Stmts) != 1 {
		t.Fatalf("unexpected parse result: %d stmts", len(pr.Program.Body.Stmts))
	}
}
