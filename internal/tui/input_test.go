package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newTextPromptModel(label string) textPromptModel {
	input := textinput.New()
	input.Focus()
	return textPromptModel{label: label, input: input}
}

func TestTextPromptTypeAndEnter(t *testing.T) {
	model := newTextPromptModel("Script name")

	var updated tea.Model = model
	for _, r := range "backup" {
		updated, _ = updated.(textPromptModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	updated, _ = updated.(textPromptModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := updated.(textPromptModel)
	if !result.done {
		t.Fatalf("done = false, want true")
	}
	if result.input.Value() != "backup" {
		t.Fatalf("Value = %q, want backup", result.input.Value())
	}
}

func TestTextPromptEscCancels(t *testing.T) {
	model := newTextPromptModel("Script name")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result := updated.(textPromptModel)
	if result.err != ErrCanceled {
		t.Fatalf("err = %v, want ErrCanceled", result.err)
	}
}

func TestTextPromptView(t *testing.T) {
	model := newTextPromptModel("Script name")

	view := model.View()
	if !strings.Contains(view, "Script name") {
		t.Fatalf("view = %q, want label", view)
	}
	if !strings.Contains(view, "enter: accept") {
		t.Fatalf("view = %q, want help line", view)
	}
}

func TestTextPromptViewEmptyWhenDone(t *testing.T) {
	model := newTextPromptModel("Script name")
	model.done = true

	if view := model.View(); view != "" {
		t.Fatalf("view = %q, want empty after done", view)
	}
}
