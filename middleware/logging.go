package middleware

import (
	"context"
	"time"

	"github.com/kbukum/httpcall/client"
	"github.com/kbukum/httpcall/logger"
)

// WithLogging returns a Middleware that logs each Execute call.
// Logs: handler name, method, URL, status, duration, and error status.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner client.Handler) client.Handler {
		return &loggingHandler{inner: inner, log: log}
	}
}

type loggingHandler struct {
	inner client.Handler
	log   *logger.Logger
}

func (l *loggingHandler) Name() string                         { return l.inner.Name() }
func (l *loggingHandler) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingHandler) Execute(ctx context.Context, req *client.Request) (*client.Response, error) {
	start := time.Now()
	resp, err := l.inner.Execute(ctx, req)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldHandler:  l.inner.Name(),
		logger.FieldMethod:   req.Method,
		logger.FieldURL:      req.URL,
		logger.FieldDuration: duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("request failed", fields)
	} else {
		fields[logger.FieldStatus] = resp.StatusCode
		l.log.Debug("request completed", fields)
	}

	return resp, err
}
