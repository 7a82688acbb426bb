package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"lemcli/internal/app"
	"lemcli/internal/config"
	apperrors "lemcli/internal/errors"
	"lemcli/internal/infrastructure"
)

// cliOptions holds the command-line flags
type cliOptions struct {
	configFile  string
	verbose     bool
	showVersion bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseFlags parses args. Every flag is optional; without them the run uses
// the built-in defaults and any discovered config file.
func parseFlags(args []string, output io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := pflag.NewFlagSet("lemdata", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file (default: lemdata.yaml or configs/lemdata.yaml if present)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run loads configuration, sets up logging and executes one generation
// logConfigOrigin makes runs that did not use the built-in defaults visible
func logConfigOrigin(logger *slog.Logger, origin config.Origin) {
	if !origin.Overridden() {
		logger.Info("Configuration loaded from defaults")
		return
	}
	logger.Info("Configuration overrides applied",
		slog.String("config_file", origin.File),
		slog.Any("env_overrides", origin.EnvOverrides))
}

func run(ctx context.Context, opts *cliOptions, stdout io.Writer) error {
	paths, err := config.GetPaths()
	if err != nil {
		return apperrors.ConfigInvalid("failed to resolve executable directory", err)
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return apperrors.ConfigInvalid("failed to load configuration", err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.ResolvePaths(paths)

	if cfg.Logging.Output != "console" {
		if err := paths.EnsureDirectories(cfg.Logging.FilePath); err != nil {
			return apperrors.ConfigInvalid("failed to create log directory", err)
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return apperrors.ConfigInvalid("failed to initialize logger", err)
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting LEM series generation",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("executable_dir", paths.ExecutableDir))
	paths.LogPathResolution(logger)
	logConfigOrigin(logger, cfg.Origin())

	tracing, err := infrastructure.InitializeTracing(cfg.Tracing, os.Stderr, logger)
	if err != nil {
		return apperrors.ConfigInvalid("failed to initialize tracing", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			logger.Warn("Failed to flush spans", slog.String("error", err.Error()))
		}
	}()

	gen := app.NewGenerator(cfg, logger, stdout)
	_, err = gen.Run(ctx)
	return err
}
