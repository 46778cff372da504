package buildpipeline

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"smergiel/internal/driver"
)

// DisplayPath returns path relative to baseDir when it lies under it.
func DisplayPath(path, baseDir string) string {
	path = filepath.Clean(path)
	base := strings.TrimSpace(baseDir)
	if base == "" {
		return filepath.ToSlash(path)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return filepath.ToSlash(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(absBase, absPath); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

// phaseObserver turns driver phase events into per-file progress events.
// Directory builds call it from several goroutines.
type phaseObserver struct {
	mu      sync.Mutex
	sink    ProgressSink
	baseDir string
	timings *Timings
}

func (p *phaseObserver) OnPhase(ev driver.PhaseEvent) {
	if p == nil {
		return
	}
	var stage Stage
	switch ev.Name {
	case "load", "parse":
		stage = StageParse
	case "emit":
		stage = StageEmit
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ev.Status == driver.PhaseEnd {
		p.timings.Add(stage, ev.Elapsed)
	}
	if p.sink == nil {
		return
	}
	file := DisplayPath(ev.Path, p.baseDir)
	switch {
	case ev.Status == driver.PhaseStart:
		p.sink.OnEvent(Event{File: file, Stage: stage, Status: StatusWorking})
	case ev.Name == "emit":
		p.sink.OnEvent(Event{File: file, Stage: stage, Status: StatusDone, Elapsed: ev.Elapsed})
	}
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageParse, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, files []string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	}
}
