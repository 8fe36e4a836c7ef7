package gitutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRepoRootSuccess(t *testing.T) {
	withFakeGit(t, `#!/bin/sh
if [ "$1" = "rev-parse" ] && [ "$2" = "--show-toplevel" ]; then
  echo "/tmp/repo"
  exit 0
fi
echo "unexpected args" 1>&2
exit 1
`)

	rootDir := t.TempDir()
	root, err := RepoRoot(context.Background(), rootDir)
	if err != nil {
		t.Fatalf("RepoRoot error: %v", err)
	}
	if root != "/tmp/repo" {
		t.Fatalf("RepoRoot = %q, want /tmp/repo", root)
	}
}

func TestRepoRootFailure(t *testing.T) {
	withFakeGit(t, "#!/bin/sh\nexit 1\n")

	rootDir := t.TempDir()
	if _, err := RepoRoot(context.Background(), rootDir); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInit(t *testing.T) {
	withFakeGit(t, `#!/bin/sh
if [ "$1" = "init" ]; then
  exit 0
fi
echo "unexpected args" 1>&2
exit 1
`)

	if err := Init(context.Background(), t.TempDir()); err != nil {
		t.Fatalf("Init error: %v", err)
	}
}

func TestInitFailure(t *testing.T) {
	withFakeGit(t, "#!/bin/sh\necho \"fatal: boom\" 1>&2\nexit 128\n")

	err := Init(context.Background(), t.TempDir())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Init error = %v, want git output included", err)
	}
}

func TestUserName(t *testing.T) {
	withFakeGit(t, `#!/bin/sh
if [ "$1" = "config" ] && [ "$2" = "--get" ] && [ "$3" = "user.name" ]; then
  echo "Ada Lovelace"
  exit 0
fi
exit 1
`)

	name, err := UserName(context.Background())
	if err != nil {
		t.Fatalf("UserName error: %v", err)
	}
	if name != "Ada Lovelace" {
		t.Fatalf("UserName = %q, want Ada Lovelace", name)
	}
}

func TestUserEmailUnset(t *testing.T) {
	withFakeGit(t, "#!/bin/sh\nexit 1\n")

	email, err := UserEmail(context.Background())
	if err != nil {
		t.Fatalf("UserEmail error: %v", err)
	}
	if email != "" {
		t.Fatalf("UserEmail = %q, want empty for unset key", email)
	}
}

func TestUserNameCommandFailure(t *testing.T) {
	withFakeGit(t, "#!/bin/sh\nexit 2\n")

	if _, err := UserName(context.Background()); err == nil {
		t.Fatalf("expected error for exit code other than 1")
	}
}

func withFakeGit(t *testing.T, script string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "git")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake git: %v", err)
	}

	original := os.Getenv("PATH")
	pathEnv := strings.Join([]string{dir, original}, string(os.PathListSeparator))
	t.Setenv("PATH", pathEnv)
}
