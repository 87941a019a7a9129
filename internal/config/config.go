package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format" yaml:"format"`
	Quiet   bool   `mapstructure:"quiet" yaml:"quiet"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Scan   ScanConfig   `mapstructure:"scan" yaml:"scan"`
}

// OutputConfig controls where statistics artifacts are written
type OutputConfig struct {
	// Root is the directory under which run directories are created
	Root string `mapstructure:"root" yaml:"root"`
	// RunLayout names the run directory in directory mode (Go time layout)
	RunLayout string `mapstructure:"run_layout" yaml:"run_layout"`
	// DayLayout names the run directory in single-file mode (Go time layout)
	DayLayout string `mapstructure:"day_layout" yaml:"day_layout"`
	// Suffix is appended to a log's base name to form the artifact name
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

// ScanConfig controls file discovery and aggregation
type ScanConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension"`
	TopN      int    `mapstructure:"top_n" yaml:"top_n"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Output: OutputConfig{
			Root:      "statistics",
			RunLayout: "2006-01-02_15-04-05",
			DayLayout: "2006-01-02",
			Suffix:    "_stats.json",
		},
		Scan: ScanConfig{
			Extension: ".log",
			TopN:      3,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logstat.yaml, ./.logstat.yml, ./logstat.yaml, ./logstat.yml
// 2. the same names in the home directory
// 3. $XDG_CONFIG_HOME/logstat/config.yaml (or ~/.config/logstat/config.yaml)
// 4. /etc/logstat/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)
	cfg.normalize()

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logstat.yaml", ".logstat.yml", "logstat.yaml", "logstat.yml"}

	var searchPaths []string
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	var configDirs []string
	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, filepath.Join(configDir, "logstat"))
	}
	configDirs = append(configDirs, "/etc/logstat")
	for _, dir := range configDirs {
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGSTAT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGSTAT_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGSTAT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGSTAT_OUTPUT_ROOT"); v != "" {
		cfg.Output.Root = v
	}
	if v := os.Getenv("LOGSTAT_EXTENSION"); v != "" {
		cfg.Scan.Extension = v
	}
	if v := os.Getenv("LOGSTAT_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.TopN = n
		}
	}
}

// normalize restores defaults for values a config file blanked out
func (c *Config) normalize() {
	def := Default()
	if c.Format != "text" && c.Format != "ndjson" {
		c.Format = def.Format
	}
	if c.Output.Root == "" {
		c.Output.Root = def.Output.Root
	}
	if c.Output.RunLayout == "" {
		c.Output.RunLayout = def.Output.RunLayout
	}
	if c.Output.DayLayout == "" {
		c.Output.DayLayout = def.Output.DayLayout
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = def.Output.Suffix
	}
	if c.Scan.Extension == "" {
		c.Scan.Extension = def.Scan.Extension
	}
	if c.Scan.TopN < 1 {
		c.Scan.TopN = def.Scan.TopN
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
