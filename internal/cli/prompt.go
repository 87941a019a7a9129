package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// promptModel is the bubbletea model asking for a log path
type promptModel struct {
	input    textinput.Model
	value    string
	quitting bool
	canceled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "/var/log/nginx"
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				return m, nil
			}
			m.value = v
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		promptTitleStyle.Render("Path to a log file or directory:"),
		m.input.View(),
		promptHelpStyle.Render("enter to confirm • esc to cancel"))
}

// runPathPrompt asks for a path on the terminal. The prompt is drawn on
// stderr so stdout carries only the report.
func runPathPrompt(globals *Globals) (string, error) {
	p := tea.NewProgram(newPromptModel(), tea.WithOutput(globals.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt error: %w", err)
	}

	result := finalModel.(promptModel)
	if result.canceled {
		return "", errors.New("input canceled")
	}
	return result.value, nil
}
