package body

import (
	"errors"
	"fmt"
)

// SizeError reports that materialization was aborted because the payload
// (or its declared length) exceeds the caller's limit.
type SizeError struct {
	// Limit is the maximum byte count the caller allowed.
	Limit int64
	// Declared is the payload size reported by the size hint, or -1 when
	// the stream overflowed the limit without declaring a total size.
	Declared int64
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	if e.Declared >= 0 {
		return fmt.Sprintf("body: declared size %d exceeds limit %d", e.Declared, e.Limit)
	}
	return fmt.Sprintf("body: size exceeds limit %d", e.Limit)
}

// DecodeError reports that a materialized buffer could not be interpreted
// as the requested type.
type DecodeError struct {
	// Format identifies the decoder ("text", "json", "form").
	Format string
	// Offset is the byte offset where decoding failed, or -1 when unknown.
	Offset int64
	// Message describes the failure.
	Message string
	// Err is the underlying decoder error (may be nil).
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("body: decode %s at offset %d: %s", e.Format, e.Offset, e.Message)
	}
	return fmt.Sprintf("body: decode %s: %s", e.Format, e.Message)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsSize checks if an error is a size-exceeded error.
func IsSize(err error) bool {
	var e *SizeError
	return errors.As(err, &e)
}

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
