package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"

	"lemcli/internal/config"
)

func resetTracerProvider(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
}

func TestInitializeTracing_None(t *testing.T) {
	resetTracerProvider(t)

	p, err := InitializeTracing(config.TracingConfig{Exporter: "none", SampleRatio: 1}, nil, nil)
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInitializeTracing_Unsupported(t *testing.T) {
	_, err := InitializeTracing(config.TracingConfig{Exporter: "otlp"}, nil, nil)
	assert.Error(t, err)
}

func TestInitializeTracing_Stdout(t *testing.T) {
	resetTracerProvider(t)

	var buf bytes.Buffer
	p, err := InitializeTracing(config.TracingConfig{Exporter: "stdout", SampleRatio: 1}, &buf, nil)
	require.NoError(t, err)
	require.True(t, p.Enabled())

	ctx := WithTraceID(context.Background(), "run-1")
	ctx, span := StartSpan(ctx, "generate.read", attribute.String("sheet", "lemdata"))
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	RecordError(ctx, errors.New("boom"))
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name":"generate.read"`)
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, ServiceName)
}

func TestStartSpan_NoProvider(t *testing.T) {
	resetTracerProvider(t)
	otel.SetTracerProvider(noop.NewTracerProvider())

	ctx, span := StartSpan(context.Background(), "generate.run")
	defer span.End()

	assert.False(t, span.IsRecording())
	assert.Empty(t, TraceIDFromContext(ctx))
	RecordError(ctx, errors.New("ignored"))
}
