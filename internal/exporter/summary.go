package exporter

import (
	"fmt"
	"io"

	"lemcli/pkg/contracts/domain"
)

// WriteSummary prints the human-readable run summary: output path, total point
// count and one line per vessel. It is diagnostic output, not a data contract.
func WriteSummary(w io.Writer, path string, artifact *domain.Artifact) error {
	if artifact == nil {
		artifact = domain.NewArtifact()
	}

	if _, err := fmt.Fprintf(w, "Done! Output: %s\n", path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total data points: %d\n", artifact.TotalPoints()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Vessels:"); err != nil {
		return err
	}

	for pair := artifact.Vessels.Oldest(); pair != nil; pair = pair.Next() {
		v := pair.Value
		_, err := fmt.Fprintf(w, "  [%s] %s (%s) | %d cyls | %d records\n",
			pair.Key,
			formatLabel(v.VesselName),
			formatEngine(v.EngineMake, v.EngineType),
			v.Cyls.Len(),
			v.Points())
		if err != nil {
			return err
		}
	}
	return nil
}
