package orchestrator

import (
	"errors"

	"surefire/internal/exitcodes"
)

const (
	// TestFailureMessage is the message of a fatal test failure
	TestFailureMessage = "There are test failures."
	// ExecutionMessage prefixes failures of the test engine itself
	ExecutionMessage = "Error executing surefire"
)

// ErrorKind tells test failures apart from execution failures
type ErrorKind int

const (
	KindTestFailure ErrorKind = iota
	KindExecution
)

// BuildError is returned when a run fails the build
type BuildError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error to a process exit code
func (e *BuildError) ExitCode() int {
	if e.Kind == KindTestFailure {
		return exitcodes.TestFailure
	}
	return exitcodes.RuntimeError
}

// IsTestFailure reports whether err is or wraps a test-failure BuildError
func IsTestFailure(err error) bool {
	var bErr *BuildError
	return errors.As(err, &bErr) && bErr.Kind == KindTestFailure
}
