package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/kbukum/httpcall/body"
)

// Request is the generic representation of an outbound HTTP request.
// Once handed to a Handler it must not be mutated; middleware that adjusts
// a request works on a Clone.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the absolute target URI.
	URL string
	// Header holds the request headers. Keys are case-insensitive and may
	// carry multiple values.
	Header http.Header
	// Body is the request payload. Nil means no body.
	Body body.Body
}

// Clone returns a copy of the request with its own header map. The body is
// shared: a Body is single-pass and cannot be duplicated.
func (r *Request) Clone() *Request {
	out := &Request{
		Method: r.Method,
		URL:    r.URL,
		Body:   r.Body,
	}
	if r.Header != nil {
		out.Header = r.Header.Clone()
	}
	return out
}

// Response is the generic representation of an HTTP response. The Body
// retains ownership of the underlying transport stream until it is fully
// consumed or closed.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the streaming response payload.
	Body body.Body
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// ContentType returns the media type of the response without parameters,
// e.g. "application/json".
func (r *Response) ContentType() string {
	ct := r.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// Reader returns a size-guarded materializer over the response body.
func (r *Response) Reader() *body.Reader {
	return body.NewReader(r.Body)
}

// Close discards the response body, releasing the underlying transport
// stream. Safe to call on a fully consumed body.
func (r *Response) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}

// Handler is the uniform, middleware-composable call contract. A Handler
// accepts a generic Request and produces a Response or a terminal error.
// Implementations must be safe for concurrent use when the transport they
// delegate to is.
type Handler interface {
	// Name returns the handler's name for logs, traces, and metrics.
	Name() string
	// IsAvailable checks if the handler is ready to accept requests.
	IsAvailable(ctx context.Context) bool
	// Execute performs one request/response exchange. It returns exactly
	// one terminal error per attempt and never retries internally.
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc adapts a plain function to the Handler contract. It reports
// itself as always available under the name "func"; wrap it in middleware
// or a named type when those matter.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

func (f HandlerFunc) Name() string                       { return "func" }
func (f HandlerFunc) IsAvailable(_ context.Context) bool { return true }
func (f HandlerFunc) Execute(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
