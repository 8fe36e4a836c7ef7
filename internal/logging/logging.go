package logging

import (
	"fmt"
	"io"
	"time"
)

// Level is a log severity. The string value is what appears in the badge.
type Level string

const (
	LevelDebug   Level = "DEBUG"
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "SUCCESS"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
)

const stampFormat = "2006-01-02 15:04:05"

// Logger writes timestamped, leveled lines. ERROR goes to errOut, every
// other level to out. DEBUG is dropped unless verbose is set.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	now     func() time.Time
}

func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose, now: time.Now}
}

// Verbose reports whether DEBUG lines are emitted.
func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.Logf(LevelInfo, format, args...)
}

func (l *Logger) Successf(format string, args ...any) {
	l.Logf(LevelSuccess, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(LevelError, format, args...)
}

// Logf emits one line at the given level. Unknown levels are not dropped:
// they are written to out with an unstyled badge.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if level == LevelDebug && !l.verbose {
		return
	}

	w := l.out
	if level == LevelError {
		w = l.errOut
	}

	stamp := l.now().Format(stampFormat)
	msg := fmt.Sprintf(format, args...)

	style, known := badgeStyle(level)
	if !known {
		fmt.Fprintf(w, "%s %s %s\n", stamp, string(level), msg)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", timestampStyle.Render(stamp), style.Render(badgeText(level)), msg)
}

// badgeText pads the level name so messages line up across levels.
func badgeText(level Level) string {
	return fmt.Sprintf("%-*s", badgeWidth, string(level))
}
