package middleware

import "github.com/kbukum/httpcall/client"

// Middleware transforms a Handler by wrapping it. The returned Handler
// typically delegates to the original while adding cross-cutting behavior.
type Middleware func(client.Handler) client.Handler

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(handler) is equivalent to a(b(c(handler))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner client.Handler) client.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
