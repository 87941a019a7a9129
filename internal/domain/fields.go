package domain

// Sentinel marks a size or duration the server did not record.
const Sentinel = "-"

// Fields holds the raw captures of one matched access-log line.
// Values are kept exactly as they appear in the log; Size and Duration may be Sentinel.
type Fields struct {
	IP        string
	User      string
	Date      string
	Request   string
	Status    string
	Size      string
	Referer   string
	UserAgent string
	Duration  string
}

// Map returns the captures keyed by field name.
func (f Fields) Map() map[string]string {
	return map[string]string{
		"ip":         f.IP,
		"user":       f.User,
		"date":       f.Date,
		"request":    f.Request,
		"status":     f.Status,
		"size":       f.Size,
		"referer":    f.Referer,
		"user_agent": f.UserAgent,
		"duration":   f.Duration,
	}
}

// RequestRecord is one request as it appears in a summary's longest-request list.
type RequestRecord struct {
	IP       string `json:"ip"`
	Date     string `json:"date"`
	Method   string `json:"method"`
	URL      string `json:"url"`
	Duration int    `json:"duration"` // milliseconds
}
