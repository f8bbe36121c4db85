package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrMisuse classifies failures caused by calling code sequencing mistakes.
// Values carrying it are raised with panic, never returned.
var ErrMisuse = stderrors.New("misuse")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MisuseError is the panic value raised when an API is called in a state
// that forbids it, such as registering a style on a frozen stylesheet.
type MisuseError struct {
	Op      string
	Message string
}

// NewMisuseError constructs a MisuseError for the named operation.
func NewMisuseError(op, message string) error {
	return &MisuseError{Op: op, Message: message}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("misuse: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("misuse: %s", e.Message)
}

// Is reports ErrMisuse as a match so recovered values can be classified.
func (e *MisuseError) Is(target error) bool {
	return target == ErrMisuse
}

// IsMisuse reports whether a recovered panic value is a misuse failure.
func IsMisuse(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return stderrors.Is(err, ErrMisuse)
}
