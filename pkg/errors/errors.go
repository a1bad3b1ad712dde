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

	// Registry errors
	ErrStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	ErrTableFull          ErrorCode = "TABLE_FULL"
	ErrUnsupported        ErrorCode = "UNSUPPORTED"

	// Section errors
	ErrSectionInvalid ErrorCode = "SECTION_INVALID"
	ErrDecodeFailed   ErrorCode = "DECODE_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// GuidexError represents a structured error with code and details
type GuidexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GuidexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GuidexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GuidexError) Is(target error) bool {
	var targetErr *GuidexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GuidexError with the given code and message
func New(code ErrorCode, message string) *GuidexError {
	return &GuidexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GuidexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GuidexError {
	return &GuidexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GuidexError
func Wrap(err error, code ErrorCode, message string) *GuidexError {
	if err == nil {
		return nil
	}
	return &GuidexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GuidexError {
	if err == nil {
		return nil
	}
	return &GuidexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GuidexError) WithDetail(key string, value interface{}) *GuidexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var guidexErr *GuidexError
	if errors.As(err, &guidexErr) {
		return guidexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GuidexError
func GetErrorCode(err error) ErrorCode {
	var guidexErr *GuidexError
	if errors.As(err, &guidexErr) {
		return guidexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GuidexError
func GetErrorDetails(err error) map[string]interface{} {
	var guidexErr *GuidexError
	if errors.As(err, &guidexErr) {
		return guidexErr.Details
	}
	return nil
}
