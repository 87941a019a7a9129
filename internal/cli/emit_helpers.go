package cli

import (
	"fmt"

	"github.com/vburojevic/logstat/internal/output"
)

// emitInfo respects format/quiet.
func emitInfo(globals *Globals, emitter *output.Emitter, msg, path, outputDir string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" && emitter != nil {
		emitter.Info(msg, path, outputDir)
		return
	}
	fmt.Fprintln(globals.Stdout, msg)
}

// emitWarning respects format/quiet.
func emitWarning(globals *Globals, emitter *output.Emitter, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" && emitter != nil {
		emitter.WriteWarning(msg)
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}
