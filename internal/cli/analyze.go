package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/aggregator"
	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/output"
	"github.com/vburojevic/logstat/internal/parser"
	"github.com/vburojevic/logstat/internal/walker"
)

// AnalyzeCmd computes statistics for one access log or every log under a directory
type AnalyzeCmd struct {
	Path      string `arg:"" optional:"" help:"Log file or directory (prompted for when omitted in a terminal)"`
	Output    string `short:"o" help:"Root directory for statistics artifacts (default from config: statistics)"`
	Extension string `short:"e" help:"File suffix selected in directory mode (default from config: .log)"`
	Top       int    `short:"n" help:"Number of top IPs and longest requests to keep (default from config: 3)"`
	NoSave    bool   `help:"Print statistics without writing JSON artifacts"`
}

// promptForPath is replaced in tests.
var promptForPath = runPathPrompt

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	globals.ensure()
	c.applyDefaults(globals)

	path := strings.TrimSpace(c.Path)
	if path == "" {
		if !stdinIsTerminal() {
			return outputErrorCommon(globals, CodeNotInteractive,
				"no path given and stdin is not a terminal",
				"Pass the path as an argument: logstat analyze /var/log/nginx")
		}
		p, err := promptForPath(globals)
		if err != nil {
			return outputErrorCommon(globals, CodeNoPath, err.Error())
		}
		path = strings.TrimSpace(p)
	}

	info, err := globals.FS.Stat(path)
	switch {
	case err != nil:
		globals.Debug("stat %s: %v", path, err)
		return outputErrorCommon(globals, CodePathNotFound,
			fmt.Sprintf("path does not exist or is not a file or directory: %s", path))
	case info.IsDir():
		return c.runDirectory(globals, path)
	case info.Mode().IsRegular():
		return c.runFile(globals, path)
	default:
		return outputErrorCommon(globals, CodePathNotFound,
			fmt.Sprintf("path is not a regular file or directory: %s", path))
	}
}

func (c *AnalyzeCmd) applyDefaults(globals *Globals) {
	cfg := globals.Config
	if c.Output == "" {
		c.Output = cfg.Output.Root
	}
	if c.Extension == "" {
		c.Extension = cfg.Scan.Extension
	}
	if c.Top <= 0 {
		c.Top = cfg.Scan.TopN
	}
}

func (c *AnalyzeCmd) newAggregator(globals *Globals) *aggregator.Aggregator {
	return aggregator.New(globals.FS, parser.New(globals.Logger), globals.Logger, aggregator.WithTopN(c.Top))
}

// runDir returns the artifact directory for this run, named by the run clock.
func (c *AnalyzeCmd) runDir(globals *Globals, layout string) string {
	return filepath.Join(c.Output, globals.Clock.Now().Format(layout))
}

func (c *AnalyzeCmd) sink(globals *Globals, layout string) *output.ArtifactWriter {
	if c.NoSave {
		return nil
	}
	return output.NewArtifactWriter(globals.FS, c.runDir(globals, layout), globals.Config.Output.Suffix)
}

func (c *AnalyzeCmd) runFile(globals *Globals, path string) error {
	emitter := output.NewEmitter(globals.Stdout)
	globals.Logger.Info("processing file", zap.String("path", path))

	agg := c.newAggregator(globals)
	out := agg.Analyze(path)
	switch out.Kind {
	case domain.OutcomeNoData:
		emitInfo(globals, emitter, "Could not process the file or the file is empty: "+path, path, "")
		return nil
	case domain.OutcomeAccessError, domain.OutcomeFieldError:
		return outputErrorCommon(globals, CodeFileError, fmt.Sprintf("%s: %v", path, out.Err))
	}

	outputDir := ""
	if sink := c.sink(globals, globals.Config.Output.DayLayout); sink != nil {
		artifact, err := sink.Write(out.Summary)
		if err != nil {
			return outputErrorCommon(globals, CodeWriteFailed, err.Error())
		}
		globals.Debug("saved statistics to %s", artifact)
		outputDir = sink.Dir()
	}

	return c.report(globals, emitter, agg.TopN(), path, []*domain.FileSummary{out.Summary}, outputDir)
}

func (c *AnalyzeCmd) runDirectory(globals *Globals, root string) error {
	emitter := output.NewEmitter(globals.Stdout)
	globals.Logger.Info("processing logs in directory", zap.String("path", root))

	var sink walker.ArtifactSink
	outputDir := ""
	if w := c.sink(globals, globals.Config.Output.RunLayout); w != nil {
		sink = w
		outputDir = w.Dir()
	}

	agg := c.newAggregator(globals)
	summaries, err := walker.New(globals.FS, agg, sink, globals.Logger,
		walker.WithExtension(c.Extension),
		walker.WithObserver(func(out domain.Outcome, _ string) {
			switch out.Kind {
			case domain.OutcomeAccessError, domain.OutcomeFieldError:
				emitWarning(globals, emitter, fmt.Sprintf("skipped %s: %v", out.Path, out.Err))
			}
		}),
	).Walk(root)
	switch {
	case errors.Is(err, walker.ErrNoResults):
		emitInfo(globals, emitter, "No logs in the directory could be processed, or all files are empty: "+root, root, "")
		return nil
	case err != nil && len(summaries) > 0:
		emitWarning(globals, emitter, fmt.Sprintf("statistics for %d file(s) were saved to %s before the failure", len(summaries)-1, outputDir))
		return outputErrorCommon(globals, CodeWriteFailed, err.Error())
	case err != nil:
		return outputErrorCommon(globals, CodeReadFailed, err.Error())
	}

	return c.report(globals, emitter, agg.TopN(), root, summaries, outputDir)
}

func (c *AnalyzeCmd) report(globals *Globals, emitter *output.Emitter, topN int, root string, summaries []*domain.FileSummary, outputDir string) error {
	if globals.Format == "ndjson" {
		if err := output.NewNDJSONReporter(globals.Stdout).Report(summaries); err != nil {
			return err
		}
		return emitter.Run(root, summaries, outputDir)
	}

	r := output.NewTextReporter(globals.Stdout, output.WithPalette(globals.palette()), output.WithTopN(topN))
	if err := r.Report(summaries); err != nil {
		return err
	}
	if globals.Quiet {
		return nil
	}
	return r.Footer(len(summaries), outputDir)
}
