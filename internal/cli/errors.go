package cli

import "fmt"

// ExitError signals a command failure with a specific exit code.
//
// Cobra RunE functions return it instead of calling os.Exit directly, so
// tests can assert on exit codes; [Run] extracts the code and only
// [Execute] terminates the process. Codes propagate subprocess statuses
// unchanged (a task script exiting 3 makes taskforge exit 3).
type ExitError struct {
	Code int
}

// Error returns "exit status N", matching the os/exec convention.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError reports whether err is an *ExitError, returning its code.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}
