package domain

// OutcomeKind tags the result of analyzing one file.
type OutcomeKind int

const (
	// OutcomeSummary means the file produced a FileSummary.
	OutcomeSummary OutcomeKind = iota
	// OutcomeNoData means the file was readable but had no matching lines.
	OutcomeNoData
	// OutcomeAccessError means the file could not be opened or read.
	OutcomeAccessError
	// OutcomeFieldError means a numeric field failed to convert and the file was abandoned.
	OutcomeFieldError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSummary:
		return "summary"
	case OutcomeNoData:
		return "no_data"
	case OutcomeAccessError:
		return "access_error"
	case OutcomeFieldError:
		return "field_error"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of analyzing one file. Summary is set only
// for OutcomeSummary; Err is set for the two error kinds.
type Outcome struct {
	Kind    OutcomeKind
	Path    string
	Summary *FileSummary
	Err     error
}

// OK reports whether the outcome carries a summary.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSummary && o.Summary != nil
}
