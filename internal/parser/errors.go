package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InputFormatError.
	ErrInvalidInput = errors.New("input is not a well-formed document")

	// ErrUnsupportedFormat is returned when Decode is called with an unknown Format.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// InputFormatError is returned when the input cannot be decoded.
// It unwraps to both ErrInvalidInput and the underlying decoder error.
type InputFormatError struct {
	// Format is the format the input was decoded as.
	Format Format

	// Err is the decoder error.
	Err error
}

// Error implements the error interface.
func (e *InputFormatError) Error() string {
	return fmt.Sprintf("malformed %s input: %v", e.Format, e.Err)
}

// Unwrap returns ErrInvalidInput and the decoder error.
func (e *InputFormatError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}
