// Package otel exports request and query spans for the todos service.
package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName identifies this process in exported spans.
const ServiceName = "todos"

// Settings mirrors TODOS_OTEL_ENABLED and TODOS_OTEL_ENDPOINT.
type Settings struct {
	Enabled  bool
	Endpoint string
}

// exporting reports whether spans leave the process. Both the switch and a
// collector URL are needed.
func (s Settings) exporting() bool {
	return s.Enabled && s.Endpoint != ""
}

// Setup installs the global tracer provider when s is exporting. Otherwise
// the GET/POST / spans and the todos.list query span go to the default no-op
// provider and shutdown does nothing. Call shutdown before exit to flush.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	shutdown = func(context.Context) error { return nil }
	if !s.exporting() {
		return shutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(s.Endpoint))
	if err != nil {
		return shutdown, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(ServiceName)))
	if err != nil {
		return shutdown, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	// Honor a caller's traceparent header on GET/POST /.
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
