package parser

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/domain"
)

// linePattern matches the combined access-log format with a trailing request
// duration. Anything after the duration is ignored.
var linePattern = regexp.MustCompile(
	`^(?P<ip>\S+) - (?P<user>\S+) \[(?P<date>[^\]]*)\] "(?P<request>[^"]*)" ` +
		`(?P<status>\d{3}) (?P<size>\d+|-) "(?P<referer>[^"]*)" "(?P<user_agent>[^"]*)" (?P<duration>\d+|-)`,
)

// Parser matches raw access-log lines against linePattern
type Parser struct {
	log *zap.Logger
}

// New creates a parser that reports skipped lines to log. A nil logger is a no-op.
func New(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// Parse matches a single trimmed, non-empty line. The second return value is
// false when the line does not fit the pattern; the line is then reported as
// skipped and the caller moves on.
func (p *Parser) Parse(line string) (domain.Fields, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		p.log.Warn("skipped line", zap.String("line", line))
		return domain.Fields{}, false
	}

	return domain.Fields{
		IP:        m[1],
		User:      m[2],
		Date:      m[3],
		Request:   m[4],
		Status:    m[5],
		Size:      m[6],
		Referer:   m[7],
		UserAgent: m[8],
		Duration:  m[9],
	}, true
}

// SplitRequest extracts the method and URL from a raw request line such as
// "GET /index.html HTTP/1.1". ok is false when fewer than two tokens exist.
func SplitRequest(request string) (method, url string, ok bool) {
	tokens := strings.Fields(request)
	if len(tokens) < 2 {
		return "", "", false
	}
	return tokens[0], tokens[1], true
}
