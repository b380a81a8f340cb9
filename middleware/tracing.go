package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpcall/client"
)

const tracerName = "github.com/kbukum/httpcall/middleware"

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Execute call. The span name is "{serviceName}.{handlerName}".
// Only the trace API is used; provider and exporter wiring stay with the
// application.
func WithTracing(serviceName string) Middleware {
	return func(inner client.Handler) client.Handler {
		return &tracingHandler{inner: inner, serviceName: serviceName}
	}
}

type tracingHandler struct {
	inner       client.Handler
	serviceName string
}

func (t *tracingHandler) Name() string                         { return t.inner.Name() }
func (t *tracingHandler) IsAvailable(ctx context.Context) bool { return t.inner.IsAvailable(ctx) }

func (t *tracingHandler) Execute(ctx context.Context, req *client.Request) (*client.Response, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, t.serviceName+"."+t.inner.Name(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		),
	)
	defer span.End()

	resp, err := t.inner.Execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, "")
	}
	return resp, nil
}
