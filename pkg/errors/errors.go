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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRuleParse ErrorCode = "RULE_PARSE"

	// Scan errors
	ErrScanRoot    ErrorCode = "SCAN_ROOT"
	ErrScanPattern ErrorCode = "SCAN_PATTERN"

	// Dispatch errors
	ErrEmptyCommand    ErrorCode = "EMPTY_COMMAND"
	ErrDispatchStart   ErrorCode = "DISPATCH_START"
	ErrDispatchExit    ErrorCode = "DISPATCH_EXIT"
	ErrDispatchTimeout ErrorCode = "DISPATCH_TIMEOUT"
	ErrDispatchOutput  ErrorCode = "DISPATCH_OUTPUT"
	ErrDispatchCancel  ErrorCode = "DISPATCH_CANCELLED"
)

// WitdError represents a structured error with code and details
type WitdError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WitdError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WitdError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WitdError) Is(target error) bool {
	var targetErr *WitdError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WitdError with the given code and message
func New(code ErrorCode, message string) *WitdError {
	return &WitdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WitdError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WitdError {
	return &WitdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WitdError
func Wrap(err error, code ErrorCode, message string) *WitdError {
	if err == nil {
		return nil
	}
	return &WitdError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WitdError {
	if err == nil {
		return nil
	}
	return &WitdError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WitdError) WithDetail(key string, value interface{}) *WitdError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *WitdError) WithDetails(details map[string]interface{}) *WitdError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var werr *WitdError
	if errors.As(err, &werr) {
		return werr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WitdError
func GetErrorCode(err error) ErrorCode {
	var werr *WitdError
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WitdError
func GetErrorDetails(err error) map[string]interface{} {
	var werr *WitdError
	if errors.As(err, &werr) {
		return werr.Details
	}
	return nil
}