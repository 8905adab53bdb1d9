package errors

import "errors"

// ErrViolationsFound is returned by commands that completed but found design system violations.
var ErrViolationsFound = errors.New("design system violations found")

// CommandError carries the process exit code of a failed command up to main.
type CommandError struct {
	ExitCode    int
	CommonError string
	// Silent errors are not printed; the command already reported to the user.
	Silent bool
	err    error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// Unwrap returns the wrapped error.
func (e *CommandError) Unwrap() error {
	return e.err
}

// NewCommandError creates a new CommandError for err with the given exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		err:         err,
	}
}

// NewSilentCommandError creates a CommandError that sets the exit code without printing anything.
func NewSilentCommandError(err error, code int) *CommandError {
	e := NewCommandError(err, code)
	e.Silent = true
	return e
}

// ExitCode extracts the exit code from err. Errors that are not CommandError map to fallback.
func ExitCode(err error, fallback int) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return fallback
}

// IsSilent reports whether err is a CommandError that must not be printed.
func IsSilent(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Silent
}
