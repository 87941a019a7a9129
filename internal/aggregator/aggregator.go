package aggregator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/parser"
)

// DefaultTopN is how many IPs and longest requests a summary keeps.
const DefaultTopN = 3

// maxLineBytes is the longest line the aggregator will parse. Longer lines
// are skipped like any other line that does not match.
const maxLineBytes = 1024 * 1024

// ErrNotRegular is returned for paths that are directories or other non-files.
var ErrNotRegular = errors.New("not a regular file")

// FieldError reports a numeric field that could not be converted. It aborts
// the whole file: a value that matched the line pattern but is not a usable
// integer means the pattern and the numeric fields have diverged.
type FieldError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Option configures an Aggregator
type Option func(*Aggregator)

// WithTopN overrides DefaultTopN. Values below 1 are ignored.
func WithTopN(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topN = n
		}
	}
}

// Aggregator scans one log file at a time and produces its FileSummary
type Aggregator struct {
	fs     afero.Fs
	parser *parser.Parser
	log    *zap.Logger
	topN   int
}

// New creates an Aggregator reading from fs
func New(fs afero.Fs, p *parser.Parser, log *zap.Logger, opts ...Option) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	if p == nil {
		p = parser.New(log)
	}
	a := &Aggregator{fs: fs, parser: p, log: log, topN: DefaultTopN}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TopN returns the configured list length
func (a *Aggregator) TopN() int { return a.topN }

// Analyze scans path and returns a tagged outcome. It never panics on bad
// input: access problems, encoding problems, and empty files all come back
// as non-summary outcomes with a diagnostic already logged.
func (a *Aggregator) Analyze(path string) domain.Outcome {
	log := a.log.With(zap.String("path", path))

	acc, err := a.scan(path)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			log.Error("aborting file", zap.Error(err))
			return domain.Outcome{Kind: domain.OutcomeFieldError, Path: path, Err: err}
		}
		log.Error("cannot read file", zap.Error(err))
		return domain.Outcome{Kind: domain.OutcomeAccessError, Path: path, Err: err}
	}

	if acc.total == 0 {
		log.Warn("file contains no valid entries")
		return domain.Outcome{Kind: domain.OutcomeNoData, Path: path}
	}

	return domain.Outcome{Kind: domain.OutcomeSummary, Path: path, Summary: acc.summary(path, a.topN)}
}

func (a *Aggregator) scan(path string) (acc *accumulator, err error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	file, err := a.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	acc = newAccumulator(a.topN)
	reader := bufio.NewReaderSize(file, 64*1024)

	lineNum := 0
	for {
		raw, tooLong, err := readLine(reader, maxLineBytes)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read after line %d: %w", lineNum, err)
		}
		lineNum++
		if tooLong {
			a.log.Warn("skipped line", zap.Int("line_number", lineNum), zap.String("reason", "line too long"))
			continue
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: invalid UTF-8", lineNum)
		}
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}

		fields, ok := a.parser.Parse(line)
		if !ok {
			continue
		}
		if err := a.add(acc, lineNum, line, fields); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// readLine returns the next line without its terminator. A line longer than
// limit is drained from r and reported as tooLong with no data.
func readLine(r *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	read := false
	for {
		chunk, isPrefix, rerr := r.ReadLine()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) && read {
				return line, tooLong, nil
			}
			return nil, false, rerr
		}
		read = true
		if !tooLong {
			if len(line)+len(chunk) > limit {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func (a *Aggregator) add(acc *accumulator, lineNum int, line string, f domain.Fields) error {
	method, url, ok := parser.SplitRequest(f.Request)
	if !ok {
		a.log.Warn("skipped line", zap.String("line", line), zap.String("reason", "request has no URL"))
		return nil
	}

	duration, err := coerce(lineNum, "duration", f.Duration)
	if err != nil {
		return err
	}
	// size is validated even though no statistic uses it
	if _, err := coerce(lineNum, "size", f.Size); err != nil {
		return err
	}

	acc.add(domain.RequestRecord{
		IP:       f.IP,
		Date:     f.Date,
		Method:   method,
		URL:      url,
		Duration: duration,
	})
	return nil
}

// coerce converts a numeric capture, mapping the sentinel to zero.
func coerce(lineNum int, field, value string) (int, error) {
	if value == domain.Sentinel {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FieldError{Line: lineNum, Field: field, Value: value, Err: err}
	}
	return n, nil
}
