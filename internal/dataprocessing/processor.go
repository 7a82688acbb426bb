package dataprocessing

import (
	"context"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lemcli/pkg/contracts/domain"
)

// SeriesProcessor turns raw sheet rows into the vessel/cylinder series artifact
type SeriesProcessor struct {
	opts   Options
	logger *slog.Logger
}

// NewSeriesProcessor creates a processor
func NewSeriesProcessor(opts Options, logger *slog.Logger) *SeriesProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeriesProcessor{
		opts:   opts,
		logger: logger.With(slog.String("component", "series_processor")),
	}
}

// Process normalizes, groups, filters, sorts, imputes and projects rows.
// It is total over its input: no row can make it fail.
func (p *SeriesProcessor) Process(ctx context.Context, rows []domain.RawRow) (*domain.Artifact, Stats) {
	stats := Stats{RowsRead: len(rows), Fills: make(map[string]int, len(p.opts.FillFields))}

	samples := make([]*domain.Sample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, NormalizeRow(row, p.opts.NumericFields, p.opts.DateField))
	}

	fleet := Group(samples)
	stats.Vessels = fleet.Vessels.Len()

	artifact := domain.NewArtifact()
	for vp := fleet.Vessels.Oldest(); vp != nil; vp = vp.Next() {
		vesselID, group := vp.Key, vp.Value

		out := &domain.VesselSeries{
			VesselName: group.VesselName,
			IMO:        group.IMO,
			EngineMake: group.EngineMake,
			EngineType: group.EngineType,
			Owner:      group.Owner,
			Cyls:       orderedmap.New[string, []domain.SeriesPoint](),
		}

		for cp := group.Cyls.Oldest(); cp != nil; cp = cp.Next() {
			stats.Cylinders++
			series := SelectSeries(cp.Value, p.opts.DateFloor)
			stats.Kept += len(series)
			stats.Dropped += len(cp.Value) - len(series)

			for _, col := range p.opts.FillFields {
				n := FillMissing(series, col, p.opts.Window, p.opts.Decimals)
				stats.Fills[col] += n
				if n > 0 {
					p.logger.DebugContext(ctx, "Imputed values",
						slog.String("vessel", vesselID),
						slog.String("cyl", cp.Key),
						slog.String("field", col),
						slog.Int("fills", n))
				}
			}

			points := make([]domain.SeriesPoint, 0, len(series))
			for _, s := range series {
				points = append(points, Project(s))
			}
			out.Cyls.Set(cp.Key, points)
		}

		artifact.Vessels.Set(vesselID, out)
	}

	p.logger.InfoContext(ctx, "Series processed",
		slog.Int("rows", stats.RowsRead),
		slog.Int("vessels", stats.Vessels),
		slog.Int("cylinders", stats.Cylinders),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped", stats.Dropped),
		slog.Any("fills", stats.Fills))

	return artifact, stats
}
