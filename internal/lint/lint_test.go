package lint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSyntaxOK(t *testing.T) {
	withFakeTool(t, "bash", `#!/bin/sh
if [ "$1" = "-n" ]; then
  exit 0
fi
exit 1
`)

	if err := Syntax(context.Background(), "script.sh"); err != nil {
		t.Fatalf("Syntax error: %v", err)
	}
}

func TestSyntaxReportsFailure(t *testing.T) {
	withFakeTool(t, "bash", "#!/bin/sh\necho \"script.sh: line 3: syntax error\" 1>&2\nexit 2\n")

	err := Syntax(context.Background(), "script.sh")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Fatalf("Syntax error = %v, want shell output included", err)
	}
}

func TestShellcheckMissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	ran, err := Shellcheck(context.Background(), "script.sh")
	if err != nil {
		t.Fatalf("Shellcheck error: %v", err)
	}
	if ran {
		t.Fatalf("Shellcheck ran = true, want false when tool is absent")
	}
}

func TestShellcheckClean(t *testing.T) {
	withFakeTool(t, "shellcheck", "#!/bin/sh\nexit 0\n")

	ran, err := Shellcheck(context.Background(), "script.sh")
	if err != nil {
		t.Fatalf("Shellcheck error: %v", err)
	}
	if !ran {
		t.Fatalf("Shellcheck ran = false, want true")
	}
}

func TestShellcheckFindings(t *testing.T) {
	withFakeTool(t, "shellcheck", "#!/bin/sh\necho \"SC2086: quote this\"\nexit 1\n")

	ran, err := Shellcheck(context.Background(), "script.sh")
	if !ran {
		t.Fatalf("Shellcheck ran = false, want true")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "SC2086") {
		t.Fatalf("Shellcheck error = %v, want findings included", err)
	}
}

func withFakeTool(t *testing.T, name, script string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake %s: %v", name, err)
	}

	original := os.Getenv("PATH")
	pathEnv := strings.Join([]string{dir, original}, string(os.PathListSeparator))
	t.Setenv("PATH", pathEnv)
}
