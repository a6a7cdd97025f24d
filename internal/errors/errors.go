// Package errors provides sentinel errors and exit codes for the modlist CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known failure conditions.
var (
	// ErrSetup indicates a configuration or template-read failure during setup.
	ErrSetup = errors.New("setup error")

	// ErrGraph indicates the build graph could not be loaded or scanned.
	ErrGraph = errors.New("graph error")

	// ErrWrite indicates the output file could not be created or written.
	ErrWrite = errors.New("write error")

	// ErrNotFound indicates a file or module was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitSetupError indicates configuration or template loading failed.
	ExitSetupError = 2

	// ExitGraphError indicates the build graph could not be loaded.
	ExitGraphError = 3

	// ExitWriteError indicates the output file could not be written.
	ExitWriteError = 4

	// ExitNotFound indicates a file or module was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitSetupError:
		return "Setup Error"
	case ExitGraphError:
		return "Graph Error"
	case ExitWriteError:
		return "Write Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks the error as already reported by the command layer,
	// so main does not print it a second time.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrSetup):
		return ExitSetupError
	case errors.Is(err, ErrGraph):
		return ExitGraphError
	case errors.Is(err, ErrWrite):
		return ExitWriteError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
