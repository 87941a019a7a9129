package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/logstat/internal/cli"
	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/logging"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags still win
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("logstat"),
		kong.Description("Per-file statistics for extended combined access logs\n\nExamples:\n  logstat /var/log/nginx/access.log\n  logstat analyze /var/log/nginx --format ndjson"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	// Create globals with config fallbacks
	globals := cli.NewGlobalsWithConfig(&c, cfg)
	globals.Logger = logging.New(logging.Options{
		JSON:    globals.Format == "ndjson",
		Verbose: globals.Verbose,
		Quiet:   globals.Quiet,
	})

	err = ctx.Run(globals)
	_ = globals.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
