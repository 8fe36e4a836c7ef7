package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkscript/mkscript/internal/template"
)

var ErrExists = errors.New("script already exists")

// CheckComplete reports whether the file at path contains no template
// fields left to fill.
func CheckComplete(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read script: %w", err)
	}

	doc, err := template.Parse(data)
	if err != nil {
		// Treat a malformed template as an error to avoid false success.
		return false, err
	}

	return len(doc.Fields) == 0, nil
}

// WriteScript writes a rendered script to path with the executable bit
// set, creating parent directories as needed. An existing file is refused
// unless backup is set, in which case the previous content goes to
// <path>.mkscript.bak first. After writing, the file is re-parsed and any
// surviving field is an error.
func WriteScript(path string, content []byte, backup bool) error {
	previous, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !backup {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		bak := path + ".mkscript.bak"
		if err := os.WriteFile(bak, previous, 0o644); err != nil {
			return fmt.Errorf("write backup %s: %w", filepath.Base(bak), err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	default:
		return fmt.Errorf("read existing script: %w", err)
	}

	if err := os.WriteFile(path, content, 0o755); err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	complete, err := CheckComplete(path)
	if err != nil {
		return fmt.Errorf("post-write check: %w", err)
	}
	if !complete {
		return errors.New("written script still contains template fields")
	}

	return nil
}
