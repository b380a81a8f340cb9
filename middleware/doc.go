// Package middleware provides composable layers over the client.Handler
// contract: header injection, authorization, request IDs, logging,
// metrics, and tracing.
//
// A Middleware wraps a Handler and returns a Handler; Chain composes
// several into one. The core Service stays free of cross-cutting behavior
// so any policy, including retry and rate limiting authored elsewhere,
// can be layered through the same contract.
//
//	h := middleware.Chain(
//	    middleware.WithRequestID(),
//	    middleware.WithBearerAuth(token),
//	    middleware.WithLogging(log),
//	)(svc)
package middleware
