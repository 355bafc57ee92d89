package middleware

import (
	"context"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/freakynit/openai-function-schema-generator"
)

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelConfig)

type otelConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.meterProvider = mp
	}
}

// WithServiceName sets the service name for telemetry.
func WithServiceName(name string) OTelOption {
	return func(c *otelConfig) {
		c.serviceName = name
	}
}

// OTel returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a span per generation and records generation counts and latency.
func OTel(opts ...OTelOption) Middleware {
	cfg := &otelConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "funcschema",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion("1.0.0"),
	)

	meter := cfg.meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	// Create metrics instruments
	generationCounter, _ := meter.Int64Counter(
		"funcschema.generations",
		metric.WithDescription("Total number of schema generations"),
		metric.WithUnit("{generation}"),
	)

	generationDuration, _ := meter.Float64Histogram(
		"funcschema.generation.duration",
		metric.WithDescription("Duration of schema generations"),
		metric.WithUnit("ms"),
	)

	errorCounter, _ := meter.Int64Counter(
		"funcschema.generation.errors",
		metric.WithDescription("Total number of failed schema generations"),
		metric.WithUnit("{error}"),
	)

	return func(next Func) Func {
		return func(ctx context.Context, t reflect.Type) (string, error) {
			ctx, span := tracer.Start(ctx, "funcschema.generate",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String("funcschema.type", typeName(t)),
					attribute.String("service.name", cfg.serviceName),
				),
			)
			defer span.End()

			startTime := time.Now()

			attrs := []attribute.KeyValue{
				attribute.String("funcschema.type", typeName(t)),
				attribute.String("service.name", cfg.serviceName),
			}

			generationCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

			doc, err := next(ctx, t)

			duration := float64(time.Since(startTime).Milliseconds())
			generationDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			} else {
				span.SetStatus(codes.Ok, "")
			}

			return doc, err
		}
	}
}

// SpanFromContext returns the current span from context.
// Returns a no-op span if no span is present.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
