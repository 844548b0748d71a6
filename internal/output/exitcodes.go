package output

import "errors"

// Process exit codes.
const (
	ExitSuccess           = 0
	ExitUserError         = 1
	ExitSystemError       = 2
	ExitMissingDependency = 3
	ExitStale             = 4
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Hint    string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewUserErrorWithCause creates a user error wrapping cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// NewSystemErrorWithCause creates a system error (exit code 2) wrapping cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewDependencyError reports an unavailable collaborator (exit code 3).
// hint tells the user how to fix the installation.
func NewDependencyError(message, hint string, cause error) *ExitError {
	return &ExitError{Code: ExitMissingDependency, Message: message, Hint: hint, Cause: cause}
}

// NewStaleError reports generated output that no longer matches (exit code 4).
func NewStaleError(message string) *ExitError {
	return &ExitError{Code: ExitStale, Message: message}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
