package infrastructure

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"cabgap/internal/config"
)

// tracerName identifies spans emitted by this module.
const tracerName = "cabgap"

// InitTracing configures the global tracer provider. When tracing is enabled,
// spans are written to stdout; there is deliberately no network exporter.
// The returned shutdown function flushes pending spans and must be called
// before the process exits.
func InitTracing(cfg config.TracingConfig) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}

	res := sdkresource.NewSchemaless(
		attribute.String("service.name", tracerName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// Tracer returns the tracer for pipeline spans. When tracing was never
// initialized this is a no-op tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
