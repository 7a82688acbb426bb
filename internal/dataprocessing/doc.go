// Package dataprocessing turns the lubricant-analysis sheet into per-cylinder
// time series ready for the dashboard.
//
// # Architecture
//
// The package is organized into five steps, run in order by SeriesProcessor:
//
//  1. SheetReader: reads the worksheet into RawRows keyed by header name
//  2. NormalizeRow: canonical dates, float-or-absent numeric columns
//  3. Fold / Group: vessel -> cylinder buckets, first-seen vessel metadata
//  4. SelectSeries / FillMissing: date floor, date sort, trailing-mean fill
//  5. Project: the narrow record the front-end reads
//
// # Data Flow
//
//	Excel sheet → RawRow → Sample → Fleet → sorted series → filled series → Artifact
//
// # Imputation
//
// FillMissing runs once per fill column over the same sorted series, so the
// columns never share history. A gap is filled with the mean of up to the last
// three known values of that column, rounded to four decimals, and the filled
// value joins the history. Gaps before the first known value stay empty.
//
//	rows, err := dataprocessing.NewSheetReader(logger).ReadFile("lem_raw.xlsx", "lemdata")
//	artifact, stats := dataprocessing.NewSeriesProcessor(dataprocessing.DefaultOptions(), logger).
//	    Process(ctx, rows)
//
// # Error Handling
//
// Only the reader returns errors, and only for I/O problems. Cells that do
// not coerce become absent values.
package dataprocessing
