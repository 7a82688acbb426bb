package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"lemcli/internal/config"
	apperrors "lemcli/internal/errors"
	"lemcli/internal/infrastructure"
	"lemcli/internal/shared/testutil"
)

// createTestLogger creates a logger that discards output for testing
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// writeSourceWorkbook builds a small lubricant-analysis workbook
func writeSourceWorkbook(t *testing.T, dir string) string {
	t.Helper()
	return testutil.WriteWorkbook(t, filepath.Join(dir, "data", "lem_raw.xlsx"), "lemdata", [][]interface{}{
		testutil.LubricantHeader,
		{1001, 1, date("2024-01-10"), "Aurora", 9123456, "MAN", "6G70", "Nordic", 40, 20, 10, 1, "<1", 2, 0.9, 75, 0.5, "VLSFO", 12, 1, 0.2, "Alpha 40", "High"},
		{1001, 1, date("2024-02-10"), "Aurora", 9123456, "MAN", "6G70", "Nordic", nil, nil, 14, 3, 1, 2, 0.9, 75, 0.5, "VLSFO", 12, 1, 0.2, "Alpha 40", "High"},
		{1001, 1, date("2023-12-01"), "Aurora", 9123456, "MAN", "6G70", "Nordic", 99, 99, 99, 99, 1, 2, 0.9, 75, 0.5, "VLSFO", 12, 1, 0.2, "Alpha 40", "High"},
		{1001, 2, date("2024-01-20"), "Aurora II", 9123456, "MAN", "6G70", "Nordic", 35, "n/a", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil},
		{2002, 1, "2024-03-01", "Boreas", 9654321, "WinGD", "X72", "Southern", 50, 30, 20, 2, 1, 1, 1.1, 80, 0.1, "HSFO", 8, 2, 0.1, "Beta 100", "Low"},
	})
}

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Source.Path = filepath.Join(dir, "data", "lem_raw.xlsx")
	cfg.Output.Path = filepath.Join(dir, "web", "data.js")
	return cfg
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	writeSourceWorkbook(t, dir)
	cfg := testConfig(dir)

	var status bytes.Buffer
	gen := NewGenerator(cfg, createTestLogger(), &status)

	result, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.TraceID)
	assert.Equal(t, cfg.Output.Path, result.OutputPath)
	assert.Equal(t, 5, result.Stats.RowsRead)
	assert.Equal(t, 1, result.Stats.Dropped)
	assert.Equal(t, 4, result.Artifact.TotalPoints())
	assert.Equal(t, 1, result.Stats.Fills["BN_"])
	assert.Equal(t, 1, result.Stats.Fills["Iron_"])

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "/* generated file, do not edit */\nconst SDA_DATA = {\n"))
	assert.True(t, strings.HasSuffix(out, "};\n"))
	assert.Contains(t, out, `"VesselName": "Aurora",`, "first row wins for vessel metadata")
	assert.NotContains(t, out, "Aurora II")
	assert.Contains(t, out, `"Ni": "<1"`)
	assert.Contains(t, out, `"date": "2024-03-01"`)
	assert.NotContains(t, out, "2023-12-01")
	assert.Contains(t, out, `"imputed": [
            "BN_",
            "Iron_"
          ]`)

	assert.Equal(t, "Done! Output: "+cfg.Output.Path+"\n"+
		"Total data points: 4\n"+
		"Vessels:\n"+
		"  [1001] Aurora (MAN 6G70) | 2 cyls | 3 records\n"+
		"  [2002] Boreas (WinGD X72) | 1 cyls | 1 records\n", status.String())
}

func TestGenerator_RunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeSourceWorkbook(t, dir)
	cfg := testConfig(dir)
	gen := NewGenerator(cfg, createTestLogger(), nil)

	_, err := gen.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)

	_, err = gen.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_RunKeepsTraceID(t *testing.T) {
	dir := t.TempDir()
	writeSourceWorkbook(t, dir)

	ctx := infrastructure.WithTraceID(context.Background(), "run-42")
	result, err := NewGenerator(testConfig(dir), createTestLogger(), nil).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-42", result.TraceID)
}

func TestGenerator_RunEmitsSpans(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	var spans bytes.Buffer
	tp, err := infrastructure.InitializeTracing(config.TracingConfig{Exporter: "stdout", SampleRatio: 1}, &spans, createTestLogger())
	require.NoError(t, err)

	dir := t.TempDir()
	writeSourceWorkbook(t, dir)
	logger, logs := testutil.NewTestLogger(t)
	_, err = NewGenerator(testConfig(dir), logger, nil).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))

	completed, ok := logs.Find("Generation completed")
	require.True(t, ok)
	spanTrace, _ := completed.Attrs["otel_trace_id"].(string)
	assert.Len(t, spanTrace, 32, "completion log links to the exported trace")
	assert.Contains(t, spans.String(), spanTrace)

	for _, name := range []string{"generate.run", "generate.validate", "generate.read", "generate.process", "generate.write"} {
		assert.Contains(t, spans.String(), `"Name":"`+name+`"`)
	}
}

func TestGenerator_RunErrors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string, cfg *config.Config)
		wantCode  string
		wantStage apperrors.Stage
	}{
		{
			name:      "missing workbook",
			setup:     func(t *testing.T, dir string, cfg *config.Config) {},
			wantCode:  apperrors.CodeSourceNotFound,
			wantStage: apperrors.StageSource,
		},
		{
			name: "missing sheet",
			setup: func(t *testing.T, dir string, cfg *config.Config) {
				writeSourceWorkbook(t, dir)
				cfg.Source.Sheet = "other"
			},
			wantCode:  apperrors.CodeSheetNotFound,
			wantStage: apperrors.StageSource,
		},
		{
			name: "output parent is a file",
			setup: func(t *testing.T, dir string, cfg *config.Config) {
				writeSourceWorkbook(t, dir)
				blocker := filepath.Join(dir, "blocker")
				require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
				cfg.Output.Path = filepath.Join(blocker, "data.js")
			},
			wantCode:  apperrors.CodeOutputUnwritable,
			wantStage: apperrors.StageOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := testConfig(dir)
			tt.setup(t, dir, cfg)

			logger, logs := testutil.NewTestLogger(t)
			var status bytes.Buffer
			result, err := NewGenerator(cfg, logger, &status).Run(context.Background())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsCode(err, tt.wantCode), "got %v", err)
			assert.Empty(t, status.String())

			failure, ok := logs.Find("Generation failed")
			require.True(t, ok)
			assert.Equal(t, string(tt.wantStage), failure.Attrs["stage"])
		})
	}
}

func TestProcessingOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Imputation.DateFloor = "2023-06-01"
	cfg.Imputation.Window = 5
	cfg.Imputation.Decimals = 2

	opts := ProcessingOptions(cfg)
	assert.Equal(t, "2023-06-01", opts.DateFloor)
	assert.Equal(t, 5, opts.Window)
	assert.Equal(t, 2, opts.Decimals)
	assert.Equal(t, []string{"BN_", "Iron_", "PQ-Index_", "Chromium"}, opts.FillFields)
}
