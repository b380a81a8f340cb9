package client

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTransport, "transport"},
		{ErrCodeTimeout, "timeout"},
		{ErrCodeHeader, "header"},
		{ErrCodeRequest, "request"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorPredicates(t *testing.T) {
	cause := errors.New("connection refused")

	transport := NewTransportError(cause)
	if !IsTransport(transport) || IsTimeout(transport) || IsHeader(transport) {
		t.Error("transport error misclassified")
	}
	if !errors.Is(transport, cause) {
		t.Error("expected Unwrap to expose the native error")
	}

	timeout := NewTimeoutError(cause)
	if !IsTimeout(timeout) || IsTransport(timeout) {
		t.Error("timeout error misclassified")
	}

	header := NewHeaderError("Connection", "reserved")
	if !IsHeader(header) || IsRequest(header) {
		t.Error("header error misclassified")
	}
	if RejectedHeader(header) != "Connection" {
		t.Errorf("RejectedHeader() = %q", RejectedHeader(header))
	}

	reqErr := NewRequestError("bad url")
	if !IsRequest(reqErr) || IsHeader(reqErr) {
		t.Error("request error misclassified")
	}
}

func TestErrorPredicatesOnWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("middleware context: %w", NewHeaderError("Upgrade", "reserved"))
	if !IsHeader(wrapped) {
		t.Error("expected predicate to see through wrapping")
	}
	if RejectedHeader(wrapped) != "Upgrade" {
		t.Errorf("RejectedHeader() = %q", RejectedHeader(wrapped))
	}
}

func TestErrorMessageNamesHeader(t *testing.T) {
	err := NewHeaderError("Transfer-Encoding", "reserved by the transport")
	if !strings.Contains(err.Error(), "Transfer-Encoding") {
		t.Errorf("message %q does not name the header", err.Error())
	}
}

func TestRejectedHeaderOnOtherErrors(t *testing.T) {
	if RejectedHeader(errors.New("plain")) != "" {
		t.Error("expected empty header name for unrelated error")
	}
}
