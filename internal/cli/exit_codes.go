package cli

import "errors"

// Exit codes for the superclaude CLI. ExitBlocked is part of the hook wire
// contract: Claude Code treats a nonzero hook exit as a blocked tool call.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitBlocked = 2
)

// exitError carries a bare exit code without a printable message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// NewExitError creates an error that maps to the given exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}

func isExitError(err error) bool {
	var ee *exitError
	return errors.As(err, &ee)
}
