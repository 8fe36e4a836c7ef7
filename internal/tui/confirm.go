package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmYesStyle lipgloss.Style
	confirmNoStyle  lipgloss.Style
)

type confirmModel struct {
	question string
	answer   bool
	done     bool
	err      error
}

// Confirm asks a yes/no question. y answers yes; n, esc, and enter answer no.
func Confirm(ctx context.Context, question string) (bool, error) {
	if err := ensureThemeLoaded(); err != nil {
		return false, err
	}

	model := confirmModel{question: question}
	program := tea.NewProgram(model, tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirm TUI error: %w", err)
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, fmt.Errorf("confirm returned unexpected model")
	}
	if result.err != nil {
		return false, result.err
	}
	return result.answer, nil
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.err = ErrCanceled
			return m, tea.Quit
		case "y", "Y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "esc", "enter":
			m.answer = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.err != nil {
		return ""
	}
	return promptStyle.Render(m.question) + " " + confirmYesStyle.Render("[y]es") + " / " + confirmNoStyle.Render("[n]o")
}
