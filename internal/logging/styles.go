package logging

import "github.com/charmbracelet/lipgloss"

// badgeWidth fits the widest level name (SUCCESS).
const badgeWidth = len(LevelSuccess)

// palette holds the badge colors. Values are lipgloss color strings
// (ANSI 256 codes or hex).
type palette struct {
	Debug     string
	Info      string
	Success   string
	Warn      string
	Error     string
	Timestamp string
}

var (
	debugBadgeStyle   lipgloss.Style
	infoBadgeStyle    lipgloss.Style
	successBadgeStyle lipgloss.Style
	warnBadgeStyle    lipgloss.Style
	errorBadgeStyle   lipgloss.Style
	timestampStyle    lipgloss.Style
)

func init() {
	applyPalette(defaultPalette())
}

func defaultPalette() palette {
	return palette{
		Debug:     "244",
		Info:      "39",
		Success:   "42",
		Warn:      "214",
		Error:     "196",
		Timestamp: "241",
	}
}

func applyPalette(p palette) {
	debugBadgeStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(p.Debug))

	infoBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Info))

	successBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Success))

	warnBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Warn))

	errorBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Error))

	timestampStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Timestamp))
}

// badgeStyle returns the style for a known level. Unknown levels report
// false so the caller can fall back to an unstyled line.
func badgeStyle(level Level) (lipgloss.Style, bool) {
	switch level {
	case LevelDebug:
		return debugBadgeStyle, true
	case LevelInfo:
		return infoBadgeStyle, true
	case LevelSuccess:
		return successBadgeStyle, true
	case LevelWarn:
		return warnBadgeStyle, true
	case LevelError:
		return errorBadgeStyle, true
	default:
		return lipgloss.Style{}, false
	}
}
