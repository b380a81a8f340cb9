package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/httpcall/client"
)

// Metrics holds the OpenTelemetry metric instruments recorded per request.
type Metrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	errorTotal      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter. Pass
// otel.Meter("...") to use the globally configured provider; exporter
// wiring stays with the application.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("httpcall.request.total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating httpcall.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("httpcall.request.duration",
		metric.WithDescription("Duration of requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating httpcall.request.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("httpcall.error.total",
		metric.WithDescription("Total number of failed requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating httpcall.error.total counter: %w", err)
	}

	return &Metrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		errorTotal:      errorTotal,
	}, nil
}

// DefaultMetrics creates instruments on the global meter provider.
func DefaultMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter("github.com/kbukum/httpcall/middleware"))
}

// WithMetrics returns a Middleware that records request count, duration,
// and errors for each Execute call.
func WithMetrics(m *Metrics) Middleware {
	return func(inner client.Handler) client.Handler {
		return &metricsHandler{inner: inner, metrics: m}
	}
}

type metricsHandler struct {
	inner   client.Handler
	metrics *Metrics
}

func (m *metricsHandler) Name() string                         { return m.inner.Name() }
func (m *metricsHandler) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }

func (m *metricsHandler) Execute(ctx context.Context, req *client.Request) (*client.Response, error) {
	start := time.Now()
	resp, err := m.inner.Execute(ctx, req)
	duration := time.Since(start)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	attrs := metric.WithAttributes(
		attribute.String("handler", m.inner.Name()),
		attribute.String("method", req.Method),
		attribute.String("status", status),
	)

	m.metrics.requestTotal.Add(ctx, 1, attrs)
	m.metrics.requestDuration.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		m.metrics.errorTotal.Add(ctx, 1, attrs)
	}

	return resp, err
}
