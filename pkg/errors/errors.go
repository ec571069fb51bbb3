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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Prompt errors
	ErrPromptRead    ErrorCode = "PROMPT_READ"
	ErrPromptAborted ErrorCode = "PROMPT_ABORTED"

	// Git errors
	ErrRemoteForm ErrorCode = "REMOTE_FORM"
	ErrGitOpen    ErrorCode = "GIT_OPEN"
	ErrGitStage   ErrorCode = "GIT_STAGE"
	ErrGitCommit  ErrorCode = "GIT_COMMIT"

	// Subprocess errors
	ErrCommandRun  ErrorCode = "COMMAND_RUN"
	ErrToolInstall ErrorCode = "TOOL_INSTALL"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileDelete   ErrorCode = "FILE_DELETE"
	ErrFileRename   ErrorCode = "FILE_RENAME"
	ErrFileEmpty    ErrorCode = "FILE_EMPTY"

	// Operation errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
)

// BootstrapError represents a structured error with code and details
type BootstrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootstrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootstrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootstrapError) Is(target error) bool {
	var targetErr *BootstrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootstrapError with the given code and message
func New(code ErrorCode, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootstrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(err error, code ErrorCode, message string) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootstrapError) WithDetail(key string, value interface{}) *BootstrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode checks whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var berr *BootstrapError
	if errors.As(err, &berr) {
		return berr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not BootstrapErrors
func GetCode(err error) ErrorCode {
	var berr *BootstrapError
	if errors.As(err, &berr) {
		return berr.Code
	}
	return ErrUnknown
}
