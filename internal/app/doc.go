// Package app wires the LEM series generator together.
//
// Generator owns one run of the batch job:
//
//	1. Validate the source workbook and the output location
//	2. Read the sheet into raw rows
//	3. Normalize, group, filter, impute and project the series
//	4. Write the JavaScript artifact atomically
//	5. Print the run summary to the status writer
//
// Every run carries a trace id in its context so all log lines of one run
// can be correlated. Each step runs inside its own span (generate.validate,
// generate.read, ...) under a generate.run root; spans are only exported
// when tracing is configured.
//
// # Usage
//
//	gen := app.NewGenerator(cfg, logger, os.Stdout)
//	if _, err := gen.Run(context.Background()); err != nil {
//	    os.Exit(1)
//	}
package app
