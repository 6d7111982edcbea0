package errors

import (
	"errors"
	"fmt"
)

// UsageHint is the usage line shown for a malformed -c invocation.
const UsageHint = `Invalid Category format. Use -c Category/filename.md "note text"`

// NewUsageError creates a new usage error. The message is shown verbatim.
func NewUsageError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
		Code:    "USAGE",
	}
}

// NewConfigError creates a new configuration error for the file at path
func NewConfigError(path string, cause error) *AppError {
	err := &AppError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("failed to load configuration from %s", path),
		Code:    "CONFIG_INVALID",
		Cause:   cause,
	}
	return err.WithContext("path", path)
}

// NewIOError creates a new file system error
func NewIOError(operation string, path string, cause error) *AppError {
	err := &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("%s failed for %s", operation, path),
		Code:    "IO_ERROR",
		Cause:   cause,
	}
	return err.WithContext("operation", operation).WithContext("path", path)
}

// NewSpawnError creates a new error for a process that could not be started
func NewSpawnError(program string, cause error) *AppError {
	err := &AppError{
		Type:    ErrorTypeSpawn,
		Message: fmt.Sprintf("failed to start %q", program),
		Code:    "SPAWN_FAILED",
		Cause:   cause,
	}
	return err.WithContext("program", program)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns the message shown on the console. I/O and spawn
// errors show the underlying cause, since that is what the user can act on.
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeUsage:
			return appErr.Message
		case ErrorTypeConfig:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeIO, ErrorTypeSpawn:
			if appErr.Cause != nil {
				return appErr.Cause.Error()
			}
			return appErr.Message
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
