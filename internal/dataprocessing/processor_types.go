package dataprocessing

import (
	"lemcli/internal/config"
	"lemcli/pkg/contracts/domain"
)

// Options configures the series pipeline
type Options struct {
	// DateField names the sample date column
	DateField string

	// NumericFields are coerced to float-or-absent
	NumericFields []string

	// FillFields are imputed, one independent pass each, in this order
	FillFields []string

	// DateFloor drops samples dated before it (YYYY-MM-DD string comparison)
	DateFloor string

	// Window is the number of trailing values averaged for a fill
	Window int

	// Decimals is the rounding precision of filled values
	Decimals int
}

// DefaultOptions returns default processing options
func DefaultOptions() Options {
	return Options{
		DateField:     domain.ColDateSample,
		NumericFields: domain.NumericColumns,
		FillFields:    domain.FillColumns,
		DateFloor:     config.DefaultDateFloor,
		Window:        config.DefaultTrailingWindow,
		Decimals:      config.DefaultRoundingDecimals,
	}
}

// Stats summarizes one pipeline run
type Stats struct {
	RowsRead  int
	Vessels   int
	Cylinders int
	Kept      int
	// Dropped counts samples removed by the date floor or a missing date
	Dropped int
	// Fills counts imputed values per fill field
	Fills map[string]int
}
