package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"lemcli/internal/config"
	"lemcli/internal/dataprocessing"
	apperrors "lemcli/internal/errors"
	"lemcli/internal/exporter"
	"lemcli/internal/infrastructure"
	"lemcli/internal/validation"
	"lemcli/pkg/contracts/domain"
)

// Generator wires the batch job: validate, read, process, write, summarize
type Generator struct {
	Config *config.Config
	Logger *slog.Logger

	validator *validation.FileValidator
	reader    *dataprocessing.SheetReader
	processor *dataprocessing.SeriesProcessor
	writer    *exporter.JSConstWriter
	status    io.Writer
}

// Result describes a completed run
type Result struct {
	TraceID    string
	SourcePath string
	OutputPath string
	Artifact   *domain.Artifact
	Stats      dataprocessing.Stats
	Duration   time.Duration
}

// NewGenerator creates a generator from configuration. The run summary is
// written to status; pass io.Discard to suppress it.
func NewGenerator(cfg *config.Config, logger *slog.Logger, status io.Writer) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if status == nil {
		status = io.Discard
	}

	return &Generator{
		Config:    cfg,
		Logger:    logger,
		validator: validation.NewFileValidator(logger),
		reader:    dataprocessing.NewSheetReader(logger),
		processor: dataprocessing.NewSeriesProcessor(ProcessingOptions(cfg), logger),
		writer:    exporter.NewJSConstWriter(cfg.Output.ConstName, cfg.Output.Banner, logger),
		status:    status,
	}
}

// ProcessingOptions maps the imputation settings onto pipeline options
func ProcessingOptions(cfg *config.Config) dataprocessing.Options {
	opts := dataprocessing.DefaultOptions()
	opts.DateFloor = cfg.Imputation.DateFloor
	opts.Window = cfg.Imputation.Window
	opts.Decimals = cfg.Imputation.Decimals
	return opts
}

// Run executes one generation. Any error is a *errors.PipelineError and no
// artifact is written when the source cannot be read.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := infrastructure.StartSpan(ctx, "generate.run")
	defer span.End()
	start := time.Now()

	src, out := g.Config.Source, g.Config.Output

	g.Logger.InfoContext(ctx, "Generation started",
		slog.String("source", src.Path),
		slog.String("sheet", src.Sheet),
		slog.String("output", out.Path),
		slog.String("date_floor", g.Config.Imputation.DateFloor))

	if err := g.validate(ctx); err != nil {
		return nil, err
	}

	rows, err := g.read(ctx)
	if err != nil {
		return nil, err
	}

	artifact, stats := g.process(ctx, rows)

	if err := g.write(ctx, artifact); err != nil {
		return nil, err
	}

	if err := exporter.WriteSummary(g.status, out.Path, artifact); err != nil {
		g.Logger.WarnContext(ctx, "Failed to write summary", slog.String("error", err.Error()))
	}

	result := &Result{
		TraceID:    infrastructure.GetTraceID(ctx),
		SourcePath: src.Path,
		OutputPath: out.Path,
		Artifact:   artifact,
		Stats:      stats,
		Duration:   time.Since(start),
	}

	span.SetAttributes(
		attribute.Int("lem.vessels", stats.Vessels),
		attribute.Int("lem.points", artifact.TotalPoints()))
	attrs := []any{
		slog.Int("vessels", stats.Vessels),
		slog.Int("points", artifact.TotalPoints()),
		slog.Duration("duration", result.Duration),
	}
	if spanTrace := infrastructure.TraceIDFromContext(ctx); spanTrace != "" {
		attrs = append(attrs, slog.String("otel_trace_id", spanTrace))
	}
	g.Logger.InfoContext(ctx, "Generation completed", attrs...)

	return result, nil
}

func (g *Generator) validate(ctx context.Context) error {
	ctx, span := infrastructure.StartSpan(ctx, "generate.validate")
	defer span.End()

	if err := g.validator.ValidateWorkbook(g.Config.Source.Path); err != nil {
		g.logFailure(ctx, "validate source", err)
		return err
	}
	if err := g.validator.ValidateOutputPath(g.Config.Output.Path); err != nil {
		g.logFailure(ctx, "validate output", err)
		return err
	}
	return nil
}

func (g *Generator) read(ctx context.Context) ([]domain.RawRow, error) {
	ctx, span := infrastructure.StartSpan(ctx, "generate.read",
		attribute.String("lem.sheet", g.Config.Source.Sheet))
	defer span.End()

	rows, err := g.reader.ReadFile(g.Config.Source.Path, g.Config.Source.Sheet)
	if err != nil {
		g.logFailure(ctx, "read source", err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("lem.rows", len(rows)))
	return rows, nil
}

func (g *Generator) process(ctx context.Context, rows []domain.RawRow) (*domain.Artifact, dataprocessing.Stats) {
	ctx, span := infrastructure.StartSpan(ctx, "generate.process")
	defer span.End()

	artifact, stats := g.processor.Process(ctx, rows)
	span.SetAttributes(
		attribute.Int("lem.kept", stats.Kept),
		attribute.Int("lem.dropped", stats.Dropped))
	return artifact, stats
}

func (g *Generator) write(ctx context.Context, artifact *domain.Artifact) error {
	ctx, span := infrastructure.StartSpan(ctx, "generate.write")
	defer span.End()

	if err := g.writer.WriteFile(g.Config.Output.Path, artifact); err != nil {
		g.logFailure(ctx, "write artifact", err)
		return err
	}
	return nil
}

func (g *Generator) logFailure(ctx context.Context, step string, err error) {
	infrastructure.RecordError(ctx, err)
	attrs := []any{slog.String("step", step)}
	if stage, ok := apperrors.StageOf(err); ok {
		attrs = append(attrs, slog.String("stage", string(stage)))
	}
	infrastructure.WithError(g.Logger, err).ErrorContext(ctx, "Generation failed", attrs...)
}
