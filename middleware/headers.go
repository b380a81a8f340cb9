package middleware

import (
	"context"

	"github.com/kbukum/httpcall/client"
)

// HeaderMode controls how a header middleware writes into an existing
// header map.
type HeaderMode int

const (
	// HeaderOverride replaces any existing values for the key.
	HeaderOverride HeaderMode = iota
	// HeaderAppend adds the value, keeping existing ones.
	HeaderAppend
	// HeaderIfNotPresent sets the value only when the key is absent.
	HeaderIfNotPresent
)

// HeaderValueFunc produces a header value per request. Returning false
// skips the header for that request.
type HeaderValueFunc func(req *client.Request) (string, bool)

// WithHeader returns a Middleware that sets a fixed header value on every
// request according to mode.
func WithHeader(name, value string, mode HeaderMode) Middleware {
	return WithHeaderFunc(name, func(*client.Request) (string, bool) {
		return value, true
	}, mode)
}

// WithHeaderFunc returns a Middleware that derives a header value from
// each request according to mode.
func WithHeaderFunc(name string, fn HeaderValueFunc, mode HeaderMode) Middleware {
	return func(inner client.Handler) client.Handler {
		return &setHeader{inner: inner, name: name, fn: fn, mode: mode}
	}
}

type setHeader struct {
	inner client.Handler
	name  string
	fn    HeaderValueFunc
	mode  HeaderMode
}

func (s *setHeader) Name() string                         { return s.inner.Name() }
func (s *setHeader) IsAvailable(ctx context.Context) bool { return s.inner.IsAvailable(ctx) }

func (s *setHeader) Execute(ctx context.Context, req *client.Request) (*client.Response, error) {
	if s.mode == HeaderIfNotPresent && req.Header.Get(s.name) != "" {
		return s.inner.Execute(ctx, req)
	}
	value, ok := s.fn(req)
	if !ok {
		return s.inner.Execute(ctx, req)
	}
	out := req.Clone()
	if out.Header == nil {
		out.Header = make(map[string][]string)
	}
	switch s.mode {
	case HeaderAppend:
		out.Header.Add(s.name, value)
	default:
		out.Header.Set(s.name, value)
	}
	return s.inner.Execute(ctx, out)
}
