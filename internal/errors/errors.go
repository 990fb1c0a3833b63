// Package errors provides categorized user-facing errors for the driverup CLI.
package errors

// ErrorCategory classifies a CLI error for display and messaging.
type ErrorCategory int

const (
	// Network indicates the release feed or download endpoint was unreachable.
	Network ErrorCategory = iota
	// Parse indicates a version string or the feed structure could not be parsed.
	Parse
	// Archive indicates the downloaded zip could not be read or extracted.
	Archive
	// Install indicates the target directory was not writable or the copy failed.
	Install
	// Configuration indicates invalid stored settings.
	Configuration
	// Driver indicates a problem with the local driver binary.
	Driver
)

// String returns the display name of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Network:
		return "Network Error"
	case Parse:
		return "Parse Error"
	case Archive:
		return "Archive Error"
	case Install:
		return "Install Error"
	case Configuration:
		return "Configuration Error"
	case Driver:
		return "Driver Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation guidance.
// All CLI errors are terminal for the current run; there are no retries.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Details     string
	Usage       string
	Remediation []string
	Err         error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a CLIError with the given category, message, and remediation steps.
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}
