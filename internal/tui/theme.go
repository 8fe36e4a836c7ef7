package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const themeConfigFileName = "themes.json"

type ThemeConfig struct {
	Default string           `json:"default"`
	Themes  map[string]Theme `json:"themes"`
}

type Theme struct {
	Name string `json:"-"`

	TitleFg      string `json:"title_fg"`
	HelpFg       string `json:"help_fg"`
	CursorFg     string `json:"cursor_fg"`
	NameFg       string `json:"name_fg"`
	SizeFg       string `json:"size_fg"`
	PromptFg     string `json:"prompt_fg"`
	ConfirmYesFg string `json:"confirm_yes_fg"`
	ConfirmNoFg  string `json:"confirm_no_fg"`
}

var (
	themeOnce sync.Once
	themeErr  error

	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
)

func init() {
	applyTheme(defaultTheme())
}

func ensureThemeLoaded() error {
	themeOnce.Do(func() {
		theme, err := loadThemeFromConfig()
		if err != nil {
			themeErr = err
			return
		}
		applyTheme(theme)
	})
	return themeErr
}

func loadThemeFromConfig() (Theme, error) {
	fallback := defaultTheme()
	configPath, err := themeConfigPath()
	if err != nil {
		return fallback, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, nil
		}
		return Theme{}, fmt.Errorf("read theme config: %w", err)
	}

	var cfg ThemeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Theme{}, fmt.Errorf("parse theme config: %w", err)
	}

	themeName := strings.TrimSpace(cfg.Default)
	if themeName == "" {
		themeName = "default"
	}

	theme, ok := cfg.Themes[themeName]
	if !ok {
		return Theme{}, fmt.Errorf("theme %q not found in %s", themeName, configPath)
	}
	theme.Name = themeName
	return mergeTheme(fallback, theme), nil
}

func themeConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mkscript", themeConfigFileName), nil
}

func defaultTheme() Theme {
	return Theme{
		Name:         "default",
		TitleFg:      "170",
		HelpFg:       "243",
		CursorFg:     "205",
		NameFg:       "231",
		SizeFg:       "241",
		PromptFg:     "39",
		ConfirmYesFg: "42",
		ConfirmNoFg:  "196",
	}
}

func mergeTheme(base Theme, override Theme) Theme {
	return Theme{
		Name:         override.Name,
		TitleFg:      pickColor(base.TitleFg, override.TitleFg),
		HelpFg:       pickColor(base.HelpFg, override.HelpFg),
		CursorFg:     pickColor(base.CursorFg, override.CursorFg),
		NameFg:       pickColor(base.NameFg, override.NameFg),
		SizeFg:       pickColor(base.SizeFg, override.SizeFg),
		PromptFg:     pickColor(base.PromptFg, override.PromptFg),
		ConfirmYesFg: pickColor(base.ConfirmYesFg, override.ConfirmYesFg),
		ConfirmNoFg:  pickColor(base.ConfirmNoFg, override.ConfirmNoFg),
	}
}

func pickColor(base string, override string) string {
	if override != "" {
		return override
	}
	return base
}

func applyTheme(theme Theme) {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.TitleFg)).
		Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HelpFg))

	cursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.CursorFg)).
		Bold(true)

	nameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.NameFg))

	sizeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SizeFg))

	promptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PromptFg)).
		Bold(true)

	confirmYesStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ConfirmYesFg)).
		Bold(true)

	confirmNoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ConfirmNoFg)).
		Bold(true)
}
