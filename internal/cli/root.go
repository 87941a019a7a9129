package cli

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/output"
)

// CLI is the root command structure for logstat
type CLI struct {
	// Global flags
	Format  string     `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Console output format"`
	Quiet   bool       `short:"q" help:"Suppress informational output and non-error diagnostics"`
	Verbose bool       `short:"v" help:"Show debug diagnostics"`
	NoColor bool       `help:"Disable colored text output"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	// Commands
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Compute statistics for an access log file or a directory of logs"`
	Inspect InspectCmd `cmd:"" help:"Render previously saved statistics artifacts"`
	Config  ConfigCmd  `cmd:"" help:"Show or manage configuration"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
	FS      afero.Fs
	Clock   clock.Clock
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  zap.NewNop(),
		FS:      afero.NewOsFs(),
		Clock:   clock.New(),
	}

	// If quiet/verbose weren't set via CLI, use config values
	if !cli.Quiet && cfg.Quiet {
		g.Quiet = true
	}
	if !cli.Verbose && cfg.Verbose {
		g.Verbose = true
	}

	return g
}

// ensure fills in collaborators a caller left unset
func (g *Globals) ensure() {
	if g.Config == nil {
		g.Config = config.Default()
	}
	if g.Logger == nil {
		g.Logger = zap.NewNop()
	}
	if g.FS == nil {
		g.FS = afero.NewOsFs()
	}
	if g.Clock == nil {
		g.Clock = clock.New()
	}
}

// palette picks the text report styles for stdout
func (g *Globals) palette() output.Palette {
	if g.NoColor {
		return output.PlainStyles
	}
	return output.PaletteFor(g.Stdout)
}

// Debug logs a debug diagnostic; it is only visible with --verbose
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Sugar().Debugf(format, args...)
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		return output.NewEmitter(globals.Stdout).Raw(map[string]string{
			"type":    "version",
			"version": Version,
			"commit":  Commit,
		})
	}
	_, err := io.WriteString(globals.Stdout, "logstat version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
