package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  output: both
  file_path: logs/run.log
tracing:
  enabled: true
paths:
  input_csv: data/downloads/requests.csv
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "data/downloads/requests.csv", cfg.Paths.InputCSV)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: debug\n"), 0644))

	t.Setenv("CABGAP_LOGGING_LEVEL", "error")
	t.Setenv("CABGAP_PATHS_INPUT_CSV", "/tmp/override.csv")

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/tmp/override.csv", cfg.Paths.InputCSV)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging: [not a map"), 0644))

	_, err := LoadFrom(configFile)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad output", func(c *Config) { c.Logging.Output = "syslog" }, true},
		{"warn level accepted", func(c *Config) { c.Logging.Level = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPaths(t *testing.T) {
	t.Run("defaults resolve against executable dir", func(t *testing.T) {
		paths, err := NewPaths(PathsConfig{})
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(paths.DataDir))
		assert.Equal(t, filepath.Join(paths.DataDir, "downloads"), paths.DownloadsDir)
		assert.Equal(t, filepath.Join(paths.DataDir, "reports"), paths.ReportsDir)
		assert.Equal(t, filepath.Join(paths.ReportsDir, "supply_demand.csv"), paths.SupplyDemandCSV)
		assert.Equal(t, filepath.Join(paths.DownloadsDir, "cab_requests.csv"), paths.RequestsCSV)
	})

	t.Run("absolute overrides kept as-is", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := NewPaths(PathsConfig{
			InputCSV:   filepath.Join(dir, "in.csv"),
			ReportsDir: filepath.Join(dir, "out"),
		})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "in.csv"), paths.RequestsCSV)
		assert.Equal(t, filepath.Join(dir, "out"), paths.ReportsDir)
		assert.Equal(t, filepath.Join(dir, "out", "supply_demand.xlsx"), paths.SupplyDemandXLSX)
	})
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		DataDir:      filepath.Join(dir, "data"),
		DownloadsDir: filepath.Join(dir, "data", "downloads"),
		ReportsDir:   filepath.Join(dir, "data", "reports"),
		LogsDir:      filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.DataDir, paths.DownloadsDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
