package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"lemcli/internal/config"
	"lemcli/pkg/contracts/domain"
)

// NormalizeRow converts a raw row into a Sample. It never fails: a value that
// cannot be coerced becomes absent.
func NormalizeRow(row domain.RawRow, numericFields []string, dateField string) *domain.Sample {
	s := domain.NewSample()

	numeric := make(map[string]bool, len(numericFields))
	for _, col := range numericFields {
		numeric[col] = true
		s.Numbers[col] = coerceFloat(row[col])
	}

	for col, v := range row {
		switch {
		case col == dateField, numeric[col]:
		case col == domain.ColNavitec:
			s.Navitec = v
		case col == domain.ColCyl:
			s.Cyl = v
		default:
			s.Fields[col] = v
		}
	}

	s.DateSample = normalizeDate(row[dateField])
	return s
}

// normalizeDate renders native dates as YYYY-MM-DD and anything else present
// as its string form.
func normalizeDate(v domain.Value) *string {
	if v.IsNull() {
		return nil
	}
	var out string
	if t, ok := v.Time(); ok {
		out = t.Format(config.DateLayout)
	} else {
		out = v.String()
	}
	return &out
}

// coerceFloat returns nil for anything that is not a finite number
func coerceFloat(v domain.Value) *float64 {
	var f float64
	switch v.Kind() {
	case domain.KindNumber:
		f, _ = v.Number()
	case domain.KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case domain.KindBool:
		if b, _ := v.Bool(); b {
			f = 1
		}
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
