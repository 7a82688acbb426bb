// Package config provides configuration management for the LEM series generator.
// It layers defaults, an optional YAML file and environment variables, then
// validates the result before the run starts.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (--config, or lemdata.yaml / configs/lemdata.yaml)
//	3. Default values (lowest priority)
//
// The defaults reproduce the fixed constants of a plain run, so no file and
// no environment are needed.
//
// # Environment Variables
//
// All environment variables follow the pattern LEM_<SECTION>_<FIELD>:
//
//	LEM_SOURCE_PATH=data/lem_raw.xlsx
//	LEM_SOURCE_SHEET=lemdata
//	LEM_OUTPUT_PATH=web/data.js
//	LEM_OUTPUT_CONST_NAME=SDA_DATA
//	LEM_IMPUTATION_DATE_FLOOR=2024-01-01
//	LEM_IMPUTATION_WINDOW=3
//	LEM_IMPUTATION_DECIMALS=4
//	LEM_LOGGING_LEVEL=info
//	LEM_LOGGING_FORMAT=json
//	LEM_TRACING_EXPORTER=none
//	LEM_TRACING_SAMPLE_RATIO=1
//
// # Path Management
//
// Relative paths are resolved against the executable directory through the
// Paths type, so the tool behaves the same from any working directory:
//
//	paths, err := config.GetPaths()
//	cfg.ResolvePaths(paths)
//
// # Validation
//
// Validate uses go-playground/validator struct tags. The inclusion floor must
// be a YYYY-MM-DD date and the constant name must be a valid JavaScript
// identifier.
package config
