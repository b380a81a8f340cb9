package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/kbukum/httpcall/body"
)

// countingDoer fails the test if the transport is ever reached.
type countingDoer struct {
	calls int
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	return &http.Response{StatusCode: 200, Header: make(http.Header), Body: http.NoBody, ContentLength: 0}, nil
}

func TestAdapter_RoundTripPreservesRequest(t *testing.T) {
	var gotMethod, gotPath string
	var gotValues []string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		gotValues = r.Header.Values("X-Custom")
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
	}))
	defer srv.Close()

	svc := newService(t, Config{})
	resp, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodPut,
		URL:    srv.URL + "/items/7?full=1",
		Header: http.Header{"X-Custom": {"one", "two"}},
		Body:   body.Bytes([]byte{0x00, 0xFF, 0x10}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Close()

	if gotMethod != http.MethodPut {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPath != "/items/7?full=1" {
		t.Errorf("path = %q", gotPath)
	}
	if !reflect.DeepEqual(gotValues, []string{"one", "two"}) {
		t.Errorf("header multiplicity lost: %v", gotValues)
	}
	// Byte content must pass through without re-encoding.
	if !reflect.DeepEqual(gotBody, []byte{0x00, 0xFF, 0x10}) {
		t.Errorf("body bytes altered: %v", gotBody)
	}
}

func TestAdapter_RestrictedHeaderRejected(t *testing.T) {
	doer := &countingDoer{}
	svc, err := NewWithClient(Config{}, doer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "http://example.com/",
		Header: http.Header{"Connection": {"close"}},
	})
	if !IsHeader(err) {
		t.Fatalf("expected header error, got %v", err)
	}
	if RejectedHeader(err) != "Connection" {
		t.Errorf("RejectedHeader() = %q, want %q", RejectedHeader(err), "Connection")
	}
	if doer.calls != 0 {
		t.Errorf("transport reached %d times, want 0", doer.calls)
	}
}

func TestAdapter_RestrictedHeaderCaseInsensitive(t *testing.T) {
	doer := &countingDoer{}
	svc, _ := NewWithClient(Config{}, doer)

	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "http://example.com/",
		Header: http.Header{"transfer-encoding": {"chunked"}},
	})
	if !IsHeader(err) {
		t.Fatalf("expected header error, got %v", err)
	}
	if RejectedHeader(err) != "Transfer-Encoding" {
		t.Errorf("RejectedHeader() = %q, want canonical name", RejectedHeader(err))
	}
}

func TestAdapter_TEHeader(t *testing.T) {
	doer := &countingDoer{}
	svc, _ := NewWithClient(Config{}, doer)

	// "trailers" is the one TE value the transport accepts.
	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "http://example.com/",
		Header: http.Header{"Te": {"trailers"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "http://example.com/",
		Header: http.Header{"Te": {"gzip"}},
	})
	if !IsHeader(err) {
		t.Fatalf("expected header error for TE value, got %v", err)
	}
}

func TestAdapter_HostHeaderTranslated(t *testing.T) {
	var gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
	}))
	defer srv.Close()

	svc := newService(t, Config{})
	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    srv.URL,
		Header: http.Header{"Host": {"virtual.example.com"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHost != "virtual.example.com" {
		t.Errorf("Host = %q, want translated value", gotHost)
	}
}

func TestAdapter_ContentLengthFromSizeHint(t *testing.T) {
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.ContentLength
	}))
	defer srv.Close()

	svc := newService(t, Config{})
	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   body.String("12345"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLength != 5 {
		t.Errorf("ContentLength = %d, want 5", gotLength)
	}
}

func TestAdapter_InvalidContentLengthHeader(t *testing.T) {
	doer := &countingDoer{}
	svc, _ := NewWithClient(Config{}, doer)

	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    "http://example.com/",
		Header: http.Header{"Content-Length": {"not-a-number"}},
	})
	if !IsHeader(err) {
		t.Fatalf("expected header error, got %v", err)
	}
	if RejectedHeader(err) != "Content-Length" {
		t.Errorf("RejectedHeader() = %q", RejectedHeader(err))
	}
}

func TestAdapter_RelativeURLRejected(t *testing.T) {
	doer := &countingDoer{}
	svc, _ := NewWithClient(Config{}, doer)

	_, err := svc.Execute(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    "/users/123",
	})
	if !IsRequest(err) {
		t.Fatalf("expected request error, got %v", err)
	}
	if doer.calls != 0 {
		t.Errorf("transport reached %d times, want 0", doer.calls)
	}
}

func TestAdapter_EmptyMethodDefaultsToGET(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer srv.Close()

	svc := newService(t, Config{})
	if _, err := svc.Execute(context.Background(), &Request{URL: srv.URL}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want GET", gotMethod)
	}
}

func TestAdapter_ResponseSizeHintFromContentLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello world"))
	}))
	defer srv.Close()

	svc := newService(t, Config{})
	resp, err := svc.Execute(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Close()

	size, exact := resp.Body.SizeHint()
	if !exact || size != 11 {
		t.Errorf("SizeHint() = (%d, %v), want (11, true)", size, exact)
	}
}
