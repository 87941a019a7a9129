package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette holds the lipgloss styles used by the text report
type Palette struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
}

// Styles is the colored palette
var Styles = Palette{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("142")), // Yellow-green
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true), // Green
}

// PlainStyles renders text unchanged
var PlainStyles = Palette{
	Header:  lipgloss.NewStyle(),
	Section: lipgloss.NewStyle(),
	Label:   lipgloss.NewStyle(),
	Value:   lipgloss.NewStyle(),
	Success: lipgloss.NewStyle(),
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PaletteFor picks colored styles for terminals and plain styles otherwise
func PaletteFor(w io.Writer) Palette {
	if IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		return Styles
	}
	return PlainStyles
}
