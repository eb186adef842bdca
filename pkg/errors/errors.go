package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Library probe errors: the typesetting library is unavailable
	ErrNodeNotFound ErrorCode = "NODE_NOT_FOUND"
	ErrLibraryLoad  ErrorCode = "LIBRARY_LOAD"
	ErrTimeout      ErrorCode = "TIMEOUT"
	ErrCanceled     ErrorCode = "CANCELED"

	// Render errors: the library loaded but does not work
	ErrRenderFailed ErrorCode = "RENDER_FAILED"
	ErrRenderCheck  ErrorCode = "RENDER_CHECK"
)

// ProbeError represents a structured error with code and details
type ProbeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProbeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ProbeError) Is(target error) bool {
	var targetErr *ProbeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ProbeError with the given code and message
func New(code ErrorCode, message string) *ProbeError {
	return &ProbeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ProbeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ProbeError {
	return &ProbeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ProbeError
func Wrap(err error, code ErrorCode, message string) *ProbeError {
	if err == nil {
		return nil
	}
	return &ProbeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ProbeError {
	if err == nil {
		return nil
	}
	return &ProbeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ProbeError) WithDetail(key string, value interface{}) *ProbeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var probeErr *ProbeError
	if errors.As(err, &probeErr) {
		return probeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ProbeError
func GetErrorCode(err error) ErrorCode {
	var probeErr *ProbeError
	if errors.As(err, &probeErr) {
		return probeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ProbeError
func GetErrorDetails(err error) map[string]interface{} {
	var probeErr *ProbeError
	if errors.As(err, &probeErr) {
		return probeErr.Details
	}
	return nil
}

// UserMessage returns the error text without the bracketed code prefix.
// Plain errors are returned as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var probeErr *ProbeError
	if !errors.As(err, &probeErr) {
		return err.Error()
	}
	if probeErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", probeErr.Message, UserMessage(probeErr.Wrapped))
	}
	return probeErr.Message
}
