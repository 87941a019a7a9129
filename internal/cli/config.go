package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/output"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		record := map[string]interface{}{
			"type":    "config",
			"format":  cfg.Format,
			"quiet":   cfg.Quiet,
			"verbose": cfg.Verbose,
			"output": map[string]interface{}{
				"root":       cfg.Output.Root,
				"run_layout": cfg.Output.RunLayout,
				"day_layout": cfg.Output.DayLayout,
				"suffix":     cfg.Output.Suffix,
			},
			"scan": map[string]interface{}{
				"extension": cfg.Scan.Extension,
				"top_n":     cfg.Scan.TopN,
			},
		}
		return output.NewEmitter(globals.Stdout).Raw(record)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprint(globals.Stdout, string(data))

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		record := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		return output.NewEmitter(globals.Stdout).Raw(record)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.logstat.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.logstat.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/logstat/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# logstat configuration file
# Place this file at ./.logstat.yaml, ~/.logstat.yaml, or ~/.config/logstat/config.yaml

# Console output format: "text" (default) or "ndjson"
format: text

# Suppress informational output and non-error diagnostics
quiet: false

# Show debug diagnostics
verbose: false

output:
  # Directory under which run directories are created
  root: statistics

  # Run directory name in directory mode (Go time layout)
  run_layout: "2006-01-02_15-04-05"

  # Run directory name in single-file mode (Go time layout)
  day_layout: "2006-01-02"

  # Appended to each log's base name
  suffix: _stats.json

scan:
  # Files selected when analyzing a directory
  extension: .log

  # Number of top IPs and longest requests per file
  top_n: 3
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
