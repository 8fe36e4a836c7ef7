package gitutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RepoRoot returns the repository root directory for the given working directory.
func RepoRoot(ctx context.Context, cwd string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = cwd
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --show-toplevel failed: %w", err)
	}
	root := strings.TrimSpace(string(output))
	if root == "" {
		return "", fmt.Errorf("git rev-parse returned empty repo root")
	}
	return root, nil
}

// Init creates a new git repository in dir.
func Init(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// UserName returns the configured git user.name, or "" when unset.
func UserName(ctx context.Context) (string, error) {
	return configValue(ctx, "user.name")
}

// UserEmail returns the configured git user.email, or "" when unset.
func UserEmail(ctx context.Context) (string, error) {
	return configValue(ctx, "user.email")
}

func configValue(ctx context.Context, key string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	output, err := cmd.Output()
	if err != nil {
		// git config --get exits 1 when the key is unset.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git config --get %s failed: %w", key, err)
	}
	return strings.TrimSpace(string(output)), nil
}
