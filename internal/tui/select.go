package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// TemplateChoice is one selectable template.
type TemplateChoice struct {
	Name string
	Path string
	Size int64
}

type templateItem struct {
	name string
	path string
	size int64
}

func (t templateItem) Title() string {
	return t.name
}

func (t templateItem) Description() string {
	return ""
}

func (t templateItem) FilterValue() string {
	return t.name
}

type templateItemDelegate struct{}

var (
	cursorStyle lipgloss.Style
	nameStyle   lipgloss.Style
	sizeStyle   lipgloss.Style
)

func (d templateItemDelegate) Height() int {
	return 1
}

func (d templateItemDelegate) Spacing() int {
	return 0
}

func (d templateItemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d templateItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	tmpl, ok := item.(templateItem)
	if !ok {
		return
	}
	cursor := "  "
	if index == m.Index() {
		cursor = cursorStyle.Render("> ")
	}
	size := humanize.IBytes(uint64(tmpl.size))
	fmt.Fprint(w, cursor+nameStyle.Render(tmpl.name)+"  "+sizeStyle.Render(size))
}

type templateSelectModel struct {
	list   list.Model
	choice templateItem
	chosen bool
	err    error
}

// ErrCanceled is returned when the user backs out of a selector or prompt.
var ErrCanceled = fmt.Errorf("canceled")

// SelectTemplate opens a TUI selector and returns the chosen template.
func SelectTemplate(ctx context.Context, choices []TemplateChoice) (TemplateChoice, error) {
	if err := ensureThemeLoaded(); err != nil {
		return TemplateChoice{}, err
	}
	items := make([]list.Item, 0, len(choices))
	for _, choice := range choices {
		items = append(items, templateItem{name: choice.Name, path: choice.Path, size: choice.Size})
	}

	model := templateSelectModel{list: list.New(items, templateItemDelegate{}, 0, 0)}
	model.list.Title = "Select a template"
	model.list.Styles.Title = titleStyle
	model.list.SetShowHelp(false)
	model.list.SetShowStatusBar(false)
	model.list.SetShowPagination(false)
	model.list.SetFilteringEnabled(false)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return TemplateChoice{}, fmt.Errorf("template selector TUI error: %w", err)
	}

	result, ok := finalModel.(templateSelectModel)
	if !ok {
		return TemplateChoice{}, fmt.Errorf("template selector returned unexpected model")
	}
	if result.err != nil {
		return TemplateChoice{}, result.err
	}
	if !result.chosen {
		return TemplateChoice{}, fmt.Errorf("no template selected")
	}
	return TemplateChoice{Name: result.choice.name, Path: result.choice.path, Size: result.choice.size}, nil
}

func (m templateSelectModel) Init() tea.Cmd {
	return nil
}

func (m templateSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.err = ErrCanceled
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(templateItem); ok {
				m.choice = item
				m.chosen = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		width := msg.Width
		height := msg.Height
		if height < 5 {
			height = 5
		}
		m.list.SetSize(width, height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m templateSelectModel) View() string {
	return m.list.View() + "\n" + helpStyle.Render("up/down: move, enter: select, q: quit")
}
