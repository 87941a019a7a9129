package output

import (
	"io"

	"github.com/vburojevic/logstat/internal/domain"
)

// Emitter wraps NDJSONWriter with helpers that reuse one encoder.
type Emitter struct {
	w *NDJSONWriter
}

// NewEmitter creates an Emitter writing NDJSON to w
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: NewNDJSONWriter(w)}
}

// Summary emits a file_summary record
func (e *Emitter) Summary(s *domain.FileSummary) error {
	return e.w.WriteSummary(s)
}

// Error emits an error record with an optional hint
func (e *Emitter) Error(code, msg string, hint ...string) error {
	return e.w.WriteError(code, msg, hint...)
}

// WriteWarning emits a warning record
func (e *Emitter) WriteWarning(msg string) error {
	return e.w.WriteWarning(msg)
}

// Info emits an info record
func (e *Emitter) Info(msg, path, outputDir string) error {
	return e.w.WriteInfo(msg, path, outputDir)
}

// Run emits the run_complete record
func (e *Emitter) Run(root string, summaries []*domain.FileSummary, outputDir string) error {
	return e.w.WriteRun(root, summaries, outputDir)
}

// Raw emits any value as one line, for records without a dedicated type
func (e *Emitter) Raw(v interface{}) error {
	return e.w.WriteRaw(v)
}
