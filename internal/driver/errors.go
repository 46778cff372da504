package driver

import (
	"errors"
	"fmt"
)

// ErrBadExtension is returned for inputs that are not .smr files.
var ErrBadExtension = errors.New("source file name must end with '.smr'")

// IOError wraps a failure to read a source or write an artefact.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O Error or file not found: %q", e.Path)
}

func (e *IOError) Unwrap() error { return e.Err }
