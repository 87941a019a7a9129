package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/logstat/internal/domain"
)

// Reporter renders a batch of file summaries to the console
type Reporter interface {
	Report(summaries []*domain.FileSummary) error
}

// TextReporter renders human-readable tables
type TextReporter struct {
	w      io.Writer
	styles Palette
	topN   int
}

// TextOption configures a TextReporter
type TextOption func(*TextReporter)

// WithPalette overrides the styles picked from the writer
func WithPalette(p Palette) TextOption {
	return func(r *TextReporter) { r.styles = p }
}

// WithTopN sets the N shown in section titles
func WithTopN(n int) TextOption {
	return func(r *TextReporter) {
		if n > 0 {
			r.topN = n
		}
	}
}

// NewTextReporter creates a text reporter writing to w
func NewTextReporter(w io.Writer, opts ...TextOption) *TextReporter {
	r := &TextReporter{w: w, styles: PaletteFor(w), topN: 3}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes one block per summary. Values are printed as they are.
func (r *TextReporter) Report(summaries []*domain.FileSummary) error {
	for i, s := range summaries {
		if i > 0 {
			if _, err := fmt.Fprintln(r.w); err != nil {
				return err
			}
		}
		if err := r.renderOne(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) renderOne(s *domain.FileSummary) error {
	st := r.styles
	var b strings.Builder

	fmt.Fprintln(&b, st.Header.Render("Statistics for file: "+s.File))
	fmt.Fprintf(&b, "%s %s\n\n", st.Label.Render("Total requests:"), st.Value.Render(strconv.Itoa(s.TotalRequests)))

	fmt.Fprintln(&b, st.Section.Render("Requests by HTTP method:"))
	methods := make([][]string, 0, s.TotalStat.Len())
	s.TotalStat.Each(func(method string, n int) {
		methods = append(methods, []string{method, strconv.Itoa(n)})
	})
	if err := writeTable(&b, []string{"Method", "Requests"}, methods); err != nil {
		return err
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, st.Section.Render(fmt.Sprintf("Top %d IP addresses:", r.topN)))
	ips := make([][]string, 0, s.TopIPs.Len())
	s.TopIPs.Each(func(ip string, n int) {
		ips = append(ips, []string{ip, strconv.Itoa(n)})
	})
	if err := writeTable(&b, []string{"IP", "Requests"}, ips); err != nil {
		return err
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, st.Section.Render(fmt.Sprintf("Top %d longest requests:", r.topN)))
	longest := make([][]string, 0, len(s.TopLongest))
	for _, req := range s.TopLongest {
		longest = append(longest, []string{req.Method, req.URL, req.IP, strconv.Itoa(req.Duration) + "ms", req.Date})
	}
	if err := writeTable(&b, []string{"Method", "URL", "IP", "Duration", "Date"}, longest); err != nil {
		return err
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// Footer prints the closing line of a run
func (r *TextReporter) Footer(files int, outputDir string) error {
	msg := fmt.Sprintf("Processed %d file(s)", files)
	if outputDir != "" {
		msg += "; statistics saved to " + outputDir
	}
	_, err := fmt.Fprintln(r.w, "\n"+r.styles.Success.Render(msg))
	return err
}

// NDJSONReporter writes one file_summary record per summary
type NDJSONReporter struct {
	e *Emitter
}

// NewNDJSONReporter creates an NDJSON reporter writing to w
func NewNDJSONReporter(w io.Writer) *NDJSONReporter {
	return &NDJSONReporter{e: NewEmitter(w)}
}

// Report writes each summary on its own line
func (r *NDJSONReporter) Report(summaries []*domain.FileSummary) error {
	for _, s := range summaries {
		if err := r.e.Summary(s); err != nil {
			return err
		}
	}
	return nil
}
