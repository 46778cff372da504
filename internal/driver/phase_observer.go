package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Path    string
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Emit.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) start(path, name string) func() {
	if o == nil {
		return func() {}
	}
	begin := time.Now()
	o(PhaseEvent{Path: path, Name: name, Status: PhaseStart})
	return func() {
		o(PhaseEvent{Path: path, Name: name, Status: PhaseEnd, Elapsed: time.Since(begin)})
	}
}
