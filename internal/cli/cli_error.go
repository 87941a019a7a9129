package cli

// Error codes reported by logstat commands. They appear as "code" in NDJSON
// error records and in brackets on stderr in text mode.
const (
	CodePathNotFound   = "PATH_NOT_FOUND"  // path is neither a regular file nor a directory
	CodeNotInteractive = "NOT_INTERACTIVE" // no path argument and stdin is not a terminal
	CodeNoPath         = "NO_PATH"         // the path prompt was canceled or failed
	CodeFileError      = "FILE_ERROR"      // the single input file could not be read or converted
	CodeWriteFailed    = "WRITE_FAILED"    // a statistics artifact could not be written
	CodeReadFailed     = "READ_FAILED"     // a directory or saved artifact could not be read
)

// CLIError is returned by a command after its error has been emitted. The
// process exits with status 1 on any CLIError.
type CLIError struct {
	Code    string
	Message string
	Hint    string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}
