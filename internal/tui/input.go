package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle lipgloss.Style

type textPromptModel struct {
	label string
	input textinput.Model
	done  bool
	err   error
}

// PromptString asks for one line of input and returns the trimmed value.
// The placeholder is shown until the user types.
func PromptString(ctx context.Context, label, placeholder string) (string, error) {
	if err := ensureThemeLoaded(); err != nil {
		return "", err
	}

	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Focus()

	model := textPromptModel{label: label, input: input}
	program := tea.NewProgram(model, tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt TUI error: %w", err)
	}

	result, ok := finalModel.(textPromptModel)
	if !ok {
		return "", fmt.Errorf("prompt returned unexpected model")
	}
	if result.err != nil {
		return "", result.err
	}
	return strings.TrimSpace(result.input.Value()), nil
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.err = ErrCanceled
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	if m.done || m.err != nil {
		return ""
	}
	return promptStyle.Render(m.label) + "\n" + m.input.View() + "\n" + helpStyle.Render("enter: accept, esc: cancel")
}
