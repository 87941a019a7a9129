package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "statistics", cfg.Output.Root)
	assert.Equal(t, "2006-01-02_15-04-05", cfg.Output.RunLayout)
	assert.Equal(t, "2006-01-02", cfg.Output.DayLayout)
	assert.Equal(t, "_stats.json", cfg.Output.Suffix)
	assert.Equal(t, ".log", cfg.Scan.Extension)
	assert.Equal(t, 3, cfg.Scan.TopN)
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("loads config from the working directory", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", t.TempDir())

		content := `
format: ndjson
output:
  root: out
scan:
  top_n: 5
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".logstat.yaml"), []byte(content), 0644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "ndjson", cfg.Format)
		assert.Equal(t, "out", cfg.Output.Root)
		assert.Equal(t, 5, cfg.Scan.TopN)
		assert.Equal(t, ".log", cfg.Scan.Extension)

		path := ConfigFile()
		assert.Equal(t, ".logstat.yaml", filepath.Base(path))
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile(filepath.Join(dir, "logstat.yml"), []byte("format: ndjson\n"), 0644))

		t.Setenv("LOGSTAT_FORMAT", "text")
		t.Setenv("LOGSTAT_QUIET", "1")
		t.Setenv("LOGSTAT_VERBOSE", "true")
		t.Setenv("LOGSTAT_OUTPUT_ROOT", "/tmp/stats")
		t.Setenv("LOGSTAT_EXTENSION", ".txt")
		t.Setenv("LOGSTAT_TOP_N", "10")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "/tmp/stats", cfg.Output.Root)
		assert.Equal(t, ".txt", cfg.Scan.Extension)
		assert.Equal(t, 10, cfg.Scan.TopN)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses all config fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		configContent := `
format: ndjson
quiet: true
verbose: true
output:
  root: /var/lib/logstat
  run_layout: "20060102T150405"
  day_layout: "20060102"
  suffix: .summary.json
scan:
  extension: .access
  top_n: 10
`
		configPath := filepath.Join(tmpDir, "logstat.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "/var/lib/logstat", cfg.Output.Root)
		assert.Equal(t, "20060102T150405", cfg.Output.RunLayout)
		assert.Equal(t, "20060102", cfg.Output.DayLayout)
		assert.Equal(t, ".summary.json", cfg.Output.Suffix)
		assert.Equal(t, ".access", cfg.Scan.Extension)
		assert.Equal(t, 10, cfg.Scan.TopN)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "logstat.yaml")
		content := "format: xml\nscan:\n  top_n: 0\noutput:\n  root: \"\"\n"
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, 3, cfg.Scan.TopN)
		assert.Equal(t, "statistics", cfg.Output.Root)
	})
}
