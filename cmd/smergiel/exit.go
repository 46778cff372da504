package main

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"smergiel/internal/buildpipeline"
	"smergiel/internal/driver"
)

// Exit codes of the classic compiler.
const (
	exitFailure     = 1
	exitIO          = 5
	exitMissingPath = 7
	exitBadArgument = 22
)

var errMissingPath = errors.New("File path is needed to proceed")

// silentError carries an exit code for failures whose details were
// already printed (diagnostics, the program's own stderr).
type silentError struct {
	code int
	err  error
}

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) int {
	var silent *silentError
	if errors.As(err, &silent) {
		return silent.code
	}
	var ioErr *driver.IOError
	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, errMissingPath):
		return exitMissingPath
	case errors.Is(err, driver.ErrBadExtension):
		return exitBadArgument
	case errors.As(err, &ioErr):
		return exitIO
	case errors.As(err, &exitErr) && exitErr.ExitCode() > 0:
		return exitErr.ExitCode()
	default:
		return exitFailure
	}
}

// reportError prints err unless it is silent and returns the exit code.
func reportError(w io.Writer, err error) int {
	code := exitCodeFor(err)
	var silent *silentError
	if errors.As(err, &silent) {
		return code
	}
	var ioErr *driver.IOError
	switch {
	case errors.As(err, &ioErr):
		// классическое сообщение без обёрток
		fmt.Fprintln(w, ioErr.Error())
	case errors.Is(err, buildpipeline.ErrCompileFailed):
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
	return code
}
