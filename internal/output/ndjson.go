package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/logstat/internal/domain"
)

// NDJSONWriter writes console records as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // URLs and user agents stay readable
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// SummaryOutput is one file summary on the NDJSON stream
type SummaryOutput struct {
	Type          string `json:"type"` // Always "file_summary"
	SchemaVersion int    `json:"schemaVersion"`
	*domain.FileSummary
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
	Path          string `json:"path,omitempty"`
	OutputDir     string `json:"output_dir,omitempty"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// RunOutput closes a run with its totals
type RunOutput struct {
	Type          string `json:"type"` // Always "run_complete"
	SchemaVersion int    `json:"schemaVersion"`
	Root          string `json:"root"`
	Files         int    `json:"files"`
	Requests      int    `json:"requests"`
	OutputDir     string `json:"output_dir,omitempty"`
}

// WriteSummary outputs one file summary
func (w *NDJSONWriter) WriteSummary(summary *domain.FileSummary) error {
	return w.encoder.Encode(&SummaryOutput{
		Type:          "file_summary",
		SchemaVersion: SchemaVersion,
		FileSummary:   summary,
	})
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	err := domain.NewErrorOutput(code, message)
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}

// WriteInfo outputs an informational message
func (w *NDJSONWriter) WriteInfo(message, path, outputDir string) error {
	return w.encoder.Encode(&InfoOutput{
		Type:          "info",
		SchemaVersion: SchemaVersion,
		Message:       message,
		Path:          path,
		OutputDir:     outputDir,
	})
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteRun outputs the end-of-run record
func (w *NDJSONWriter) WriteRun(root string, summaries []*domain.FileSummary, outputDir string) error {
	total := 0
	for _, s := range summaries {
		total += s.TotalRequests
	}
	return w.encoder.Encode(&RunOutput{
		Type:          "run_complete",
		SchemaVersion: SchemaVersion,
		Root:          root,
		Files:         len(summaries),
		Requests:      total,
		OutputDir:     outputDir,
	})
}
