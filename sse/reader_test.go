package sse

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReader_SingleEvent(t *testing.T) {
	r := NewReader(strings.NewReader("data: hello\n\n"))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "hello" {
		t.Errorf("data = %q, want %q", ev.Data, "hello")
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReader_EventTypeAndID(t *testing.T) {
	input := "event: update\nid: 42\ndata: payload\n\n"
	r := NewReader(strings.NewReader(input))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Event != "update" {
		t.Errorf("event = %q", ev.Event)
	}
	if ev.ID != "42" {
		t.Errorf("id = %q", ev.ID)
	}
	if ev.Data != "payload" {
		t.Errorf("data = %q", ev.Data)
	}
}

func TestReader_MultiLineData(t *testing.T) {
	input := "data: line one\ndata: line two\n\n"
	r := NewReader(strings.NewReader(input))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "line one\nline two" {
		t.Errorf("data = %q", ev.Data)
	}
}

func TestReader_MultipleEvents(t *testing.T) {
	input := "data: first\n\ndata: second\n\n"
	r := NewReader(strings.NewReader(input))

	ev, err := r.Next()
	if err != nil || ev.Data != "first" {
		t.Fatalf("first event = %+v, %v", ev, err)
	}
	ev, err = r.Next()
	if err != nil || ev.Data != "second" {
		t.Fatalf("second event = %+v, %v", ev, err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReader_SkipsComments(t *testing.T) {
	input := ": keep-alive\ndata: real\n\n"
	r := NewReader(strings.NewReader(input))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "real" {
		t.Errorf("data = %q", ev.Data)
	}
}

func TestReader_NoSpaceAfterColon(t *testing.T) {
	r := NewReader(strings.NewReader("data:compact\n\n"))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "compact" {
		t.Errorf("data = %q", ev.Data)
	}
}

func TestReader_FinalEventWithoutTrailingBlank(t *testing.T) {
	r := NewReader(strings.NewReader("data: last"))

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "last" {
		t.Errorf("data = %q", ev.Data)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReader_EmptyStream(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestReader_CloseForwards(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("")}
	r := NewReader(src)
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !src.closed {
		t.Error("underlying stream was not closed")
	}
}

type failReader struct{ err error }

func (f *failReader) Read([]byte) (int, error) { return 0, f.err }

func TestReader_PropagatesStreamError(t *testing.T) {
	cause := errors.New("stream broken")
	r := NewReader(&failReader{err: cause})
	if _, err := r.Next(); !errors.Is(err, cause) {
		t.Errorf("error = %v, want wrapped stream error", err)
	}
}
