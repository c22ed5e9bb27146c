package domain

import "fmt"

// IndexError represents an error surfaced by the domain layer, tagged
// with a stable code so callers (the CLI, the MCP handlers) can branch on
// error kind without string matching.
type IndexError struct {
	Code    string
	Message string
	Cause   error
}

func (e IndexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e IndexError) Unwrap() error {
	return e.Cause
}

// Error codes for IndexError.
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeBuildFailed       = "BUILD_FAILED"
	ErrCodeQueryFailed       = "QUERY_FAILED"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeNotBuilt          = "NOT_BUILT"
	ErrCodeInternal          = "INTERNAL"
)

func newIndexError(code, message string, cause error) error {
	return IndexError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError reports a malformed request (bad dimension, empty
// point set where one is required, a negative k, and similar).
func NewInvalidInputError(message string, cause error) error {
	return newIndexError(ErrCodeInvalidInput, message, cause)
}

// NewBuildFailedError reports a failure while constructing a tree.
func NewBuildFailedError(message string, cause error) error {
	return newIndexError(ErrCodeBuildFailed, message, cause)
}

// NewQueryFailedError reports a failure while executing a range or k-NN
// query.
func NewQueryFailedError(message string, cause error) error {
	return newIndexError(ErrCodeQueryFailed, message, cause)
}

// NewConfigError reports a failure loading or merging configuration.
func NewConfigError(message string, cause error) error {
	return newIndexError(ErrCodeConfigError, message, cause)
}

// NewOutputError reports a failure rendering or writing a result.
func NewOutputError(message string, cause error) error {
	return newIndexError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError reports an unrecognized output format.
func NewUnsupportedFormatError(format string) error {
	return newIndexError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported output format: %s", format), nil)
}

// NewNotBuiltError reports a query against an MCP session with no index
// built yet.
func NewNotBuiltError() error {
	return newIndexError(ErrCodeNotBuilt, "no index has been built in this session", nil)
}

// NewInternalError wraps an unexpected failure that isn't specific to any
// of the above.
func NewInternalError(message string, cause error) error {
	return newIndexError(ErrCodeInternal, message, cause)
}
