package lint

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Syntax runs the shell's own syntax check (bash -n) over the script at path.
func Syntax(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "bash", "-n", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("bash -n failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Shellcheck lints the script when shellcheck is installed. The bool result
// reports whether shellcheck ran at all; a missing tool is not an error.
func Shellcheck(ctx context.Context, path string) (bool, error) {
	if _, err := exec.LookPath("shellcheck"); err != nil {
		return false, nil
	}

	cmd := exec.CommandContext(ctx, "shellcheck", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return true, fmt.Errorf("shellcheck findings: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return true, nil
}
