package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete generator configuration
type Config struct {
	Source     SourceConfig     `yaml:"source" envconfig:"SOURCE"`
	Output     OutputConfig     `yaml:"output" envconfig:"OUTPUT"`
	Imputation ImputationConfig `yaml:"imputation" envconfig:"IMPUTATION"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Tracing    TracingConfig    `yaml:"tracing" envconfig:"TRACING"`

	origin Origin
}

// Origin records which sources changed a loaded configuration
type Origin struct {
	// File is the YAML file that was applied, empty when none was found
	File string
	// EnvOverrides lists the LEM_* variables set in the environment
	EnvOverrides []string
}

// Overridden reports whether anything besides the defaults was applied
func (o Origin) Overridden() bool {
	return o.File != "" || len(o.EnvOverrides) > 0
}

// Leaf fields use split_words instead of envconfig tags: a tagged leaf falls
// back to its bare name (PATH, OUTPUT) when the prefixed key is unset.

// SourceConfig locates the lubricant-analysis workbook
type SourceConfig struct {
	Path  string `yaml:"path" split_words:"true" validate:"required"`
	Sheet string `yaml:"sheet" split_words:"true" validate:"required"`
}

// OutputConfig describes the generated script artifact
type OutputConfig struct {
	Path      string `yaml:"path" split_words:"true" validate:"required"`
	ConstName string `yaml:"const_name" split_words:"true" validate:"required,jsident"`
	Banner    string `yaml:"banner" split_words:"true"`
}

// ImputationConfig controls series filtering and trailing-average filling
type ImputationConfig struct {
	DateFloor string `yaml:"date_floor" split_words:"true" validate:"required,datetime=2006-01-02"`
	Window    int    `yaml:"window" split_words:"true" validate:"min=1,max=100"`
	Decimals  int    `yaml:"decimals" split_words:"true" validate:"min=0,max=12"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" split_words:"true" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" split_words:"true" validate:"oneof=json text"`
	Output   string `yaml:"output" split_words:"true" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true" validate:"required_unless=Output console"`
}

// TracingConfig controls OpenTelemetry spans for each run step
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" split_words:"true" validate:"oneof=none stdout"`
	SampleRatio float64 `yaml:"sample_ratio" split_words:"true" validate:"gte=0,lte=1"`
	PrettyPrint bool    `yaml:"pretty_print" split_words:"true"`
}

var jsIdentRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Load builds the configuration from defaults, then the YAML file (explicit
// path or the first one discovered), then LEM_* environment variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	cfg.origin = Origin{File: configFile, EnvOverrides: envOverrides()}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Origin returns the sources Load applied on top of the defaults
func (c *Config) Origin() Origin {
	return c.origin
}

// envOverrides returns the sorted names of the set LEM_* variables
func envOverrides() []string {
	var names []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix+"_") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// loadFromFile overlays the YAML file onto cfg; keys absent from the file keep their value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("jsident", isJSIdentifier); err != nil {
		return err
	}
	return v.Struct(c)
}

func isJSIdentifier(fl validator.FieldLevel) bool {
	return jsIdentRe.MatchString(fl.Field().String())
}

// ResolvePaths makes every relative path absolute against the executable directory
func (c *Config) ResolvePaths(p *Paths) {
	c.Source.Path = p.Resolve(c.Source.Path)
	c.Output.Path = p.Resolve(c.Output.Path)
	if c.Logging.FilePath != "" {
		c.Logging.FilePath = p.Resolve(c.Logging.FilePath)
	}
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"lemdata.yaml",
		"configs/lemdata.yaml",
		"../configs/lemdata.yaml",
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path:  DefaultSourcePath,
			Sheet: DefaultSheetName,
		},
		Output: OutputConfig{
			Path:      DefaultOutputPath,
			ConstName: DefaultConstName,
			Banner:    DefaultBanner,
		},
		Imputation: ImputationConfig{
			DateFloor: DefaultDateFloor,
			Window:    DefaultTrailingWindow,
			Decimals:  DefaultRoundingDecimals,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
		Tracing: TracingConfig{
			Exporter:    DefaultTraceExporter,
			SampleRatio: DefaultTraceSampleRatio,
		},
	}
}
