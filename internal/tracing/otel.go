package tracing

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	providerMu sync.Mutex
	provider   *sdktrace.TracerProvider
)

// InitOpenTelemetry installs a process-wide tracer provider. Calling it
// again after a successful call is a no-op. Span processors can be passed to
// attach exporters.
func InitOpenTelemetry(serviceName string, processors ...sdktrace.SpanProcessor) error {
	providerMu.Lock()
	defer providerMu.Unlock()

	if provider != nil {
		return nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return err
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	provider = sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	return nil
}

// ShutdownOpenTelemetry flushes and shuts down the global tracer provider.
func ShutdownOpenTelemetry(ctx context.Context) error {
	providerMu.Lock()
	tp := provider
	provider = nil
	providerMu.Unlock()

	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

// StartSpan starts a span and records its trace ID in the context so that
// PropagateToLogger can pick it up.
func StartSpan(ctx context.Context, tracerName, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))

	if GetTraceID(ctx) == "" {
		if sc := span.SpanContext(); sc.IsValid() {
			ctx = WithTraceID(ctx, sc.TraceID().String())
		}
	}

	return ctx, span
}
