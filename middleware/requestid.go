package middleware

import (
	"github.com/google/uuid"

	"github.com/kbukum/httpcall/client"
)

// RequestIDHeader is the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-Id"

// WithRequestID returns a Middleware that sets a fresh UUID in the
// X-Request-Id header on requests that do not already carry one.
func WithRequestID() Middleware {
	return WithHeaderFunc(RequestIDHeader, func(*client.Request) (string, bool) {
		return uuid.NewString(), true
	}, HeaderIfNotPresent)
}
