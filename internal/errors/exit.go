package errors

import "errors"

// Exit codes returned to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or a violated precondition.
	ExitValidationError = 2

	// ExitAcquisitionError indicates the template clone or copy failed.
	ExitAcquisitionError = 3

	// ExitNotFound indicates a required manifest or file was not found.
	ExitNotFound = 4

	// ExitParseError indicates a manifest could not be parsed.
	ExitParseError = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records that the command layer already presented the error,
	// so main must not print it a second time.
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
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return ExitValidationError
	case errors.Is(err, ErrAcquisition):
		return ExitAcquisitionError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrParse):
		return ExitParseError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitAcquisitionError:
		return "Acquisition Error"
	case ExitNotFound:
		return "Not Found"
	case ExitParseError:
		return "Parse Error"
	default:
		return "Unknown"
	}
}
