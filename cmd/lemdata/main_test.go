package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lemcli/internal/config"
	apperrors "lemcli/internal/errors"
	"lemcli/internal/infrastructure"
	"lemcli/internal/shared/testutil"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    cliOptions
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			want: cliOptions{},
		},
		{
			name: "long flags",
			args: []string{"--config", "custom.yaml", "--verbose"},
			want: cliOptions{configFile: "custom.yaml", verbose: true},
		},
		{
			name: "short flags",
			args: []string{"-c", "x.yaml", "-v"},
			want: cliOptions{configFile: "x.yaml", verbose: true},
		},
		{
			name: "version",
			args: []string{"--version"},
			want: cliOptions{showVersion: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"--out", "x"},
			wantErr: true,
		},
		{
			name:    "positional argument",
			args:    []string{"data.xlsx"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, err := parseFlags(tt.args, &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *opts)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"--help"}, &out)
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "--config")
}

func TestLogConfigOrigin(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	logConfigOrigin(logger, config.Origin{})
	testutil.AssertLogContains(t, logs, slog.LevelInfo, "Configuration loaded from defaults")

	logger, logs = testutil.NewTestLogger(t)
	logConfigOrigin(logger, config.Origin{File: "lemdata.yaml", EnvOverrides: []string{"LEM_OUTPUT_PATH"}})
	rec, ok := logs.Find("Configuration overrides applied")
	require.True(t, ok)
	assert.Equal(t, slog.LevelInfo, rec.Level)
	assert.Equal(t, "lemdata.yaml", rec.Attrs["config_file"])
	assert.Equal(t, []string{"LEM_OUTPUT_PATH"}, rec.Attrs["env_overrides"])
}

func writeConfig(t *testing.T, dir, source, output string) string {
	t.Helper()
	content := fmt.Sprintf(`source:
  path: %q
  sheet: lemdata
output:
  path: %q
logging:
  level: error
  output: console
`, source, output)
	path := filepath.Join(dir, "lemdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := t.TempDir()
	source := filepath.Join(dir, "lem_raw.xlsx")
	output := filepath.Join(dir, "web", "data.js")

	testutil.WriteWorkbook(t, source, "lemdata", [][]interface{}{
		{"Navitec", "Cyl", "DateSample", "VesselName", "BN_"},
		{1001, 1, "2024-05-01", "Aurora", 55},
	})

	var stdout bytes.Buffer
	err := run(context.Background(), &cliOptions{configFile: writeConfig(t, dir, source, output)}, &stdout)
	require.NoError(t, err)

	assert.FileExists(t, output)
	assert.Contains(t, stdout.String(), "Done! Output: "+output)
	assert.Contains(t, stdout.String(), "Total data points: 1")
}

func TestRun_Errors(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := t.TempDir()

	t.Run("missing config file", func(t *testing.T) {
		err := run(context.Background(), &cliOptions{configFile: filepath.Join(dir, "nope.yaml")}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigInvalid))
	})

	t.Run("missing source", func(t *testing.T) {
		cfgPath := writeConfig(t, dir, filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "data.js"))
		err := run(context.Background(), &cliOptions{configFile: cfgPath}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeSourceNotFound))
		assert.NoFileExists(t, filepath.Join(dir, "data.js"))
	})
}
