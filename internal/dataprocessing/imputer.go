package dataprocessing

import (
	"slices"
	"strconv"
	"strings"

	"lemcli/pkg/contracts/domain"
)

// SelectSeries returns the samples dated on or after floor, stable-sorted by
// date string. Samples without a date are dropped. The bucket is not modified.
func SelectSeries(bucket []*domain.Sample, floor string) []*domain.Sample {
	series := make([]*domain.Sample, 0, len(bucket))
	for _, s := range bucket {
		if date, ok := s.Date(); ok && date != "" && date >= floor {
			series = append(series, s)
		}
	}
	slices.SortStableFunc(series, func(a, b *domain.Sample) int {
		return strings.Compare(*a.DateSample, *b.DateSample)
	})
	return series
}

// FillMissing fills gaps in one column of a date-ordered series with the mean
// of the last window non-missing values, observed or previously filled,
// rounded to decimals places. Leading gaps stay missing. Filled samples get
// col appended to their imputation mark. It returns the number of fills.
func FillMissing(series []*domain.Sample, col string, window, decimals int) int {
	if window < 1 {
		window = 1
	}

	var history []float64
	fills := 0
	for _, s := range series {
		v := s.Number(col)
		if v == nil && len(history) > 0 {
			start := max(len(history)-window, 0)
			s.SetNumber(col, roundTo(mean(history[start:]), decimals))
			s.MarkImputed(col)
			fills++
			v = s.Number(col)
		}
		if v != nil {
			history = append(history, *v)
		}
	}
	return fills
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// roundTo rounds the exact binary value of v; exact ties go to even.
// Scaling by 10^decimals first would add its own representation error.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
