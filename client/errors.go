package client

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeTransport indicates the concrete transport client failed
	// (connection refused, DNS, TLS, broken stream).
	ErrCodeTransport ErrorCode = iota
	// ErrCodeTimeout indicates the request was cancelled or timed out.
	ErrCodeTimeout
	// ErrCodeHeader indicates a header could not be translated into the
	// transport client's native request.
	ErrCodeHeader
	// ErrCodeRequest indicates the request itself was malformed (bad
	// method, relative or unparseable URL).
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeHeader:
		return "header"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a structured client error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Header names the rejected header (ErrCodeHeader only).
	Header string
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("httpcall: %s: %q: %s", e.Code, e.Header, e.Message)
	}
	return fmt.Sprintf("httpcall: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error wrapping the native client
// failure unchanged.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewHeaderError creates a header-rejected error naming the offending
// header.
func NewHeaderError(name, msg string) *Error {
	return &Error{Code: ErrCodeHeader, Header: name, Message: msg}
}

// NewRequestError creates a malformed-request error.
func NewRequestError(msg string) *Error {
	return &Error{Code: ErrCodeRequest, Message: msg}
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsHeader checks if an error is a header-rejected error.
func IsHeader(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHeader
}

// IsRequest checks if an error is a malformed-request error.
func IsRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRequest
}

// RejectedHeader returns the header name carried by a header-rejected
// error, or "" when err is not one.
func RejectedHeader(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeHeader {
		return e.Header
	}
	return ""
}
