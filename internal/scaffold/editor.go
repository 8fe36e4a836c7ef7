package scaffold

import (
	"fmt"
	"os"
	"os/exec"
)

// OpenInEditor opens the generated script in $VISUAL or $EDITOR for a
// first edit. If neither is set, defaults to 'vi'.
// The command runs interactively with stdio connected.
func OpenInEditor(path string) error {
	if path == "" {
		return fmt.Errorf("script path is empty")
	}

	// Check file exists
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot access script: %w", err)
	}

	// Try VISUAL first, then EDITOR, then default to 'vi'
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", path, editor, err)
	}

	return nil
}
