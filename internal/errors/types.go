package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeUsage ErrorType = iota
	ErrorTypeConfig
	ErrorTypeIO
	ErrorTypeSpawn
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUsage:
		return "usage"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeIO:
		return "io"
	case ErrorTypeSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ContextKeys lists the context keys set by the constructors in this package,
// in the order they are logged.
var ContextKeys = []string{"operation", "path", "program"}

// AppError is an error raised by one of the note steps. Code is a stable
// identifier for diagnostics; Context holds the file or program involved.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]string
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records key=value on the error and returns it for chaining.
func (e *AppError) WithContext(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// GetContext returns the value recorded under key.
func (e *AppError) GetContext(key string) (string, bool) {
	value, ok := e.Context[key]
	return value, ok
}
