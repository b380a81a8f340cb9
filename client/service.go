package client

import (
	"context"
	"net/http"
)

// Doer is the contract the concrete transport client must satisfy:
// given a native request, produce a native response or an error.
// *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service is the terminal Handler over a concrete transport client. It is
// stateless glue: it holds no request-scoped state and may be shared across
// concurrent callers whenever the underlying Doer is itself safe to share
// (as *http.Client is).
type Service struct {
	client Doer
	config Config
}

// New creates a Service backed by its own *http.Client with the configured
// timeout.
func New(cfg Config) (*Service, error) {
	return NewWithClient(cfg, nil)
}

// NewWithClient creates a Service over the given transport client. A nil
// doer builds a default *http.Client from the config. Passing a shared,
// long-lived client here is the intended way to reuse connection pools
// across services.
func NewWithClient(cfg Config, doer Doer) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}
	return &Service{client: doer, config: cfg}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.config.Name
}

// IsAvailable reports whether the service accepts requests. The Service
// itself imposes no admission control; readiness is the transport client's
// concern.
func (s *Service) IsAvailable(_ context.Context) bool {
	return true
}

// Execute translates the request, performs the exchange through the
// transport client, and wraps the native response. Transport failures
// surface unchanged behind a typed error; nothing is retried, logged, or
// swallowed.
func (s *Service) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = s.withDefaultHeaders(req)

	nr, err := toNative(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(nr)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewTransportError(err)
	}

	return fromNative(resp), nil
}

// Unwrap returns the underlying transport client.
func (s *Service) Unwrap() Doer {
	return s.client
}

// withDefaultHeaders clones the request and fills in configured defaults,
// plus the User-Agent, for keys the request does not already carry.
func (s *Service) withDefaultHeaders(req *Request) *Request {
	if len(s.config.Headers) == 0 && req.Header.Get("User-Agent") != "" {
		return req
	}
	out := req.Clone()
	if out.Header == nil {
		out.Header = make(http.Header, len(s.config.Headers)+1)
	}
	for key, value := range s.config.Headers {
		if out.Header.Get(key) == "" {
			out.Header.Set(key, value)
		}
	}
	if out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", s.config.UserAgent)
	}
	return out
}

func canonicalKey(key string) string {
	return http.CanonicalHeaderKey(key)
}
