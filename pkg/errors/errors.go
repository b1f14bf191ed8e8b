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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Project file (.projup) errors
	ErrMissingName         ErrorCode = "MISSING_NAME"
	ErrDuplicateProperty   ErrorCode = "DUPLICATE_PROPERTY"
	ErrInvalidSyntax       ErrorCode = "INVALID_SYNTAX"
	ErrUnknownTag          ErrorCode = "UNKNOWN_TAG"
	ErrUnknownVariable     ErrorCode = "UNKNOWN_VARIABLE"
	ErrUnknownProperty     ErrorCode = "UNKNOWN_PROPERTY"
	ErrDependencyOutside   ErrorCode = "DEPENDENCY_OUTSIDE_PROJECT"
	ErrDuplicatePattern    ErrorCode = "DUPLICATE_PATTERN"
	ErrInvalidVersion      ErrorCode = "INVALID_VERSION"
	ErrInvalidCase         ErrorCode = "INVALID_CASE"
	ErrInvalidDefinition   ErrorCode = "INVALID_DEFINITION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template errors
	ErrTemplateNotFound  ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateInvalid   ErrorCode = "TEMPLATE_INVALID"
	ErrDuplicateTemplate ErrorCode = "DUPLICATE_TEMPLATE"

	// Registry errors
	ErrRegistryInvalid  ErrorCode = "REGISTRY_INVALID"
	ErrProjectExists    ErrorCode = "PROJECT_EXISTS"
	ErrUnknownProject   ErrorCode = "UNKNOWN_PROJECT"
	ErrInvalidProject   ErrorCode = "INVALID_PROJECT_NAME"
	ErrBackupNotSet     ErrorCode = "BACKUP_NOT_SET"

	// Git errors
	ErrGitCommand ErrorCode = "GIT_COMMAND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrPathExists   ErrorCode = "PATH_EXISTS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ProjupError represents a structured error with code and details
type ProjupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ProjupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProjupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ProjupError) Is(target error) bool {
	var targetErr *ProjupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ProjupError with the given code and message
func New(code ErrorCode, message string) *ProjupError {
	return &ProjupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ProjupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ProjupError {
	return &ProjupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ProjupError
func Wrap(err error, code ErrorCode, message string) *ProjupError {
	if err == nil {
		return nil
	}
	return &ProjupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ProjupError {
	if err == nil {
		return nil
	}
	return &ProjupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ProjupError) WithDetail(key string, value interface{}) *ProjupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ProjupError) WithDetails(details map[string]interface{}) *ProjupError {
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
	var projupErr *ProjupError
	if errors.As(err, &projupErr) {
		return projupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ProjupError
func GetErrorCode(err error) ErrorCode {
	var projupErr *ProjupError
	if errors.As(err, &projupErr) {
		return projupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ProjupError
func GetErrorDetails(err error) map[string]interface{} {
	var projupErr *ProjupError
	if errors.As(err, &projupErr) {
		return projupErr.Details
	}
	return nil
}

// Line returns the 1-based line detail of a project file error, or 0 when
// the error carries none.
func Line(err error) int {
	if line, ok := GetErrorDetails(err)["line"].(int); ok {
		return line
	}
	return 0
}
