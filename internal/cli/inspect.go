package cli

import (
	"fmt"

	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/output"
)

// InspectCmd renders saved statistics artifacts
type InspectCmd struct {
	Files []string `arg:"" required:"" help:"Statistics JSON files written by analyze"`
}

// Run executes the inspect command
func (c *InspectCmd) Run(globals *Globals) error {
	globals.ensure()

	summaries := make([]*domain.FileSummary, 0, len(c.Files))
	for _, path := range c.Files {
		s, err := output.ReadArtifact(globals.FS, path)
		if err != nil {
			return outputErrorCommon(globals, CodeReadFailed, fmt.Sprintf("%s: %v", path, err))
		}
		summaries = append(summaries, s)
	}

	var r output.Reporter
	if globals.Format == "ndjson" {
		r = output.NewNDJSONReporter(globals.Stdout)
	} else {
		r = output.NewTextReporter(globals.Stdout, output.WithPalette(globals.palette()), output.WithTopN(globals.Config.Scan.TopN))
	}
	return r.Report(summaries)
}
