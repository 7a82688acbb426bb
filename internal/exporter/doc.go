// Package exporter writes the vessel series artifact for the dashboard.
//
// JSConstWriter renders the artifact as a single JavaScript constant
// assignment, so the dashboard can load it from disk with a <script> tag and
// no fetch:
//
//	/* generated file, do not edit */
//	const SDA_DATA = {
//	  "1001": { "VesselName": "Aurora", ..., "cyls": { "1": [ ... ] } }
//	};
//
// The file is written to a temp file next to the target and renamed into
// place. WriteSummary prints the human-readable run summary.
//
// Example usage:
//
//	w := exporter.NewJSConstWriter("SDA_DATA", "generated file, do not edit", logger)
//	if err := w.WriteFile("web/data.js", artifact); err != nil {
//		return err
//	}
//	exporter.WriteSummary(os.Stdout, "web/data.js", artifact)
package exporter
