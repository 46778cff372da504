package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("parse")
	done("1 file")
	tm.Record("javac", 30*time.Millisecond, "")
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(rep.Phases))
	}
	if rep.Phases[0].Name != "parse" || rep.Phases[0].Note != "1 file" {
		t.Fatalf("unexpected first phase: %+v", rep.Phases[0])
	}
	if rep.Phases[1].DurationMS != 30 {
		t.Fatalf("javac = %v ms", rep.Phases[1].DurationMS)
	}
	if rep.TotalMS < 30 {
		t.Fatalf("total = %v ms", rep.TotalMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:\n", "parse", "// 1 file", "javac", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")("")
	tm.Record("y", time.Second, "")
	if rep := tm.Report(); len(rep.Phases) != 0 || rep.TotalMS != 0 {
		t.Fatalf("nil timer report = %+v", rep)
	}
}
