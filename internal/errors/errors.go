package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON  = errors.New("invalid JSON format")
	ErrMultipleJSON = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound = errors.New("file not found")
	ErrFileEmpty    = errors.New("file is empty")
	ErrNotCSV       = errors.New("destination file must have a .csv extension")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput       ErrorType = "input"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeIO          ErrorType = "io"
	ErrorTypeCompare     ErrorType = "compare"
	ErrorTypeInterrupted ErrorType = "interrupted"
	ErrorTypeExport      ErrorType = "export"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input validation
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewIOError creates a new error related to reading or writing files
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: message,
		Err:     err,
	}
}

// NewCompareError creates a new error related to the comparison pipeline
func NewCompareError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeCompare,
		Message: message,
		Err:     err,
	}
}

// NewInterruptedError creates a new error for a cancelled comparison
func NewInterruptedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInterrupted,
		Message: message,
		Err:     err,
	}
}

// NewExportError creates a new error related to report export
func NewExportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExport,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeIO:
			return fmt.Sprintf("File error: %s", appErr.Message)
		case ErrorTypeCompare:
			return fmt.Sprintf("Comparison error: %s", appErr.Message)
		case ErrorTypeInterrupted:
			return fmt.Sprintf("Comparison interrupted: %s", appErr.Message)
		case ErrorTypeExport:
			return fmt.Sprintf("Export error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object or array."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNotCSV) {
		return "Error: The export destination must end with the '.csv' extension."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
