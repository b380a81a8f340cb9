package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/kbukum/httpcall/client"
	"github.com/kbukum/httpcall/logger"
)

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	stub := newStub()
	h := WithLogging(logger.NewDefault("test"))(stub)

	req := &client.Request{Method: http.MethodGet, URL: "http://localhost/", Header: make(http.Header)}
	resp, err := h.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != stub.resp {
		t.Error("response was replaced by the logging layer")
	}
}

func TestWithLogging_PassesErrorThrough(t *testing.T) {
	stub := newStub()
	stub.resp = nil
	stub.err = errors.New("boom")
	h := WithLogging(logger.NewDefault("test"))(stub)

	req := &client.Request{Method: http.MethodGet, URL: "http://localhost/", Header: make(http.Header)}
	_, err := h.Execute(context.Background(), req)
	if !errors.Is(err, stub.err) {
		t.Fatalf("error = %v, want handler error unchanged", err)
	}
}
