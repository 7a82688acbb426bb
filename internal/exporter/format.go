package exporter

import (
	"strings"

	"lemcli/pkg/contracts/domain"
)

// formatLabel renders a metadata value for the status summary. Absent values
// render as a dash.
func formatLabel(v domain.Value) string {
	if v.IsNull() {
		return "-"
	}
	return v.String()
}

// formatEngine joins engine make and type, skipping absent parts
func formatEngine(engineMake, engineType domain.Value) string {
	parts := make([]string, 0, 2)
	for _, v := range []domain.Value{engineMake, engineType} {
		if !v.IsNull() && strings.TrimSpace(v.String()) != "" {
			parts = append(parts, v.String())
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
