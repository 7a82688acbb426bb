package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"lemcli/internal/config"
)

const (
	ServiceName = "lemdata"
	TracerName  = "lemcli"
)

// TracingProvider owns the tracer provider for one run. With the "none"
// exporter it holds nothing and spans are non-recording.
type TracingProvider struct {
	provider *sdktrace.TracerProvider
	logger   *slog.Logger
}

// InitializeTracing installs the global tracer provider. Spans are written to
// w by the stdout exporter; the CLI passes stderr since stdout carries the
// run summary.
func InitializeTracing(cfg config.TracingConfig, w io.Writer, logger *slog.Logger) (*TracingProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &TracingProvider{logger: logger}

	var exporter sdktrace.SpanExporter
	switch cfg.Exporter {
	case "", "none":
		return p, nil
	case "stdout":
		opts := []stdouttrace.Option{stdouttrace.WithWriter(w)}
		if cfg.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		exp, err := stdouttrace.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		exporter = exp
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.Exporter)
	}

	res, err := createResource()
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	p.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(p.provider)

	logger.Debug("Tracing initialized",
		slog.String("exporter", cfg.Exporter),
		slog.Float64("sample_ratio", cfg.SampleRatio))

	return p, nil
}

// Enabled reports whether spans are exported
func (p *TracingProvider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes pending spans
func (p *TracingProvider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	if err := p.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer provider shutdown: %w", err)
	}
	return nil
}

func createResource() (*resource.Resource, error) {
	hostname, _ := os.Hostname()
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(config.AppVersion),
		attribute.String("host.name", hostname),
	), nil
}

// StartSpan starts a span on the global tracer. The run's trace id, when
// present, is attached so spans and log lines can be joined.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if runID := GetTraceID(ctx); runID != "" {
		attrs = append(attrs, attribute.String("run.id", runID))
	}
	return otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// TraceIDFromContext returns the OpenTelemetry trace id of the active span
func TraceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return ""
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
