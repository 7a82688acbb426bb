package config

// Application constants for the LEM series generator
const (
	// Application Info
	AppName    = "LEM Series Generator"
	AppVersion = "1.0.0"

	// Environment variable prefix (LEM_SOURCE_PATH, LEM_LOGGING_LEVEL, ...)
	EnvPrefix = "LEM"

	// Source workbook (relative to executable)
	DefaultSourcePath = "data/lem_raw.xlsx"
	DefaultSheetName  = "lemdata"

	// Output artifact (relative to executable)
	DefaultOutputPath = "web/data.js"
	DefaultConstName  = "SDA_DATA"
	DefaultBanner     = "generated file, do not edit"

	// Imputation
	DefaultDateFloor        = "2024-01-01"
	DefaultTrailingWindow   = 3
	DefaultRoundingDecimals = 4

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"
	DefaultLogFile   = "logs/lemdata.log"
	DefaultLogsDir   = "logs"
	DefaultDataDir   = "data"
	DefaultWebDir    = "web"

	// Tracing
	DefaultTraceExporter    = "none"
	DefaultTraceSampleRatio = 1.0

	// Date layout of the canonical sample date
	DateLayout = "2006-01-02"
)
