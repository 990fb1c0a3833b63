package cli

import "fmt"

// Exit codes for the driverup CLI. The check command maps the update status
// onto the exit code so scripts can branch without parsing output.
//
// Won't use iota below because the values matter.
const (
	// ExitSuccess indicates success; for check it means the driver is latest.
	ExitSuccess = 0

	// ExitFailure is the generic failure code.
	ExitFailure = 1

	// ExitOutdated means a newer stable release is available.
	ExitOutdated = 10

	// ExitNotInstalled means no local driver was found.
	ExitNotInstalled = 20

	// ExitNewerThanStable means the local driver is ahead of stable.
	ExitNewerThanStable = 30
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the wrapped error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an error carrying the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitFailure
}
