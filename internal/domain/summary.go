package domain

// FileSummary provides aggregated request statistics for one log file
type FileSummary struct {
	File          string          `json:"file"`
	TotalRequests int             `json:"total_requests"`
	TotalStat     *CountMap       `json:"total_stat"`  // method -> count
	TopIPs        *CountMap       `json:"top_ips"`     // descending by count
	TopLongest    []RequestRecord `json:"top_longest"` // descending by duration
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`           // Always "error"
	SchemaVersion int    `json:"schemaVersion"`  // Schema version for compatibility
	Code          string `json:"code"`           // Machine-readable error code
	Message       string `json:"message"`        // Human-readable message
	Hint          string `json:"hint,omitempty"` // Suggested next step
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
