package run

import (
	"context"
	"regexp"
	"testing"

	"github.com/mkscript/mkscript/internal/cli"
	"github.com/mkscript/mkscript/internal/config"
)

func TestResolveFieldsFromArgs(t *testing.T) {
	withFakeTools(t, map[string]string{
		"git": `#!/bin/sh
if [ "$3" = "user.name" ]; then
  echo "Ada Lovelace"
  exit 0
fi
if [ "$3" = "user.email" ]; then
  echo "ada@example.com"
  exit 0
fi
exit 1
`,
	})

	cfg := config.Config{NoInput: true}
	opts := cli.Options{Args: []string{"backup", "nightly", "runner"}}
	fields := []string{"NAME", "DESCRIPTION", "AUTHOR", "DATE"}

	values, err := resolveFields(context.Background(), testLogger(), cfg, opts, fields)
	if err != nil {
		t.Fatalf("resolveFields error: %v", err)
	}

	if values["NAME"] != "backup" {
		t.Errorf("NAME = %q, want backup", values["NAME"])
	}
	if values["DESCRIPTION"] != "nightly runner" {
		t.Errorf("DESCRIPTION = %q, want nightly runner", values["DESCRIPTION"])
	}
	if values["AUTHOR"] != "Ada Lovelace <ada@example.com>" {
		t.Errorf("AUTHOR = %q, want name and email from git", values["AUTHOR"])
	}
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(values["DATE"]) {
		t.Errorf("DATE = %q, want YYYY-MM-DD", values["DATE"])
	}
}

func TestResolveFieldsMissingName(t *testing.T) {
	cfg := config.Config{NoInput: true}

	_, err := resolveFields(context.Background(), testLogger(), cfg, cli.Options{}, []string{"NAME"})
	if err == nil {
		t.Fatal("resolveFields error = nil, want error for missing name")
	}
}

func TestResolveFieldsEmptyDescriptionAllowed(t *testing.T) {
	cfg := config.Config{NoInput: true}
	opts := cli.Options{Args: []string{"backup"}}

	values, err := resolveFields(context.Background(), testLogger(), cfg, opts, []string{"NAME", "DESCRIPTION"})
	if err != nil {
		t.Fatalf("resolveFields error: %v", err)
	}
	if values["DESCRIPTION"] != "" {
		t.Errorf("DESCRIPTION = %q, want empty", values["DESCRIPTION"])
	}
}

func TestResolveFieldsUnknownFieldNonInteractive(t *testing.T) {
	cfg := config.Config{NoInput: true}
	opts := cli.Options{Args: []string{"svc"}}

	_, err := resolveFields(context.Background(), testLogger(), cfg, opts, []string{"NAME", "PORT"})
	if err == nil {
		t.Fatal("resolveFields error = nil, want error for custom field")
	}
}

func TestResolveAuthorPrecedence(t *testing.T) {
	ctx := context.Background()

	got := resolveAuthor(ctx, testLogger(), config.Config{Author: "Configured"})
	if got != "Configured" {
		t.Errorf("author = %q, want config value to win", got)
	}

	withFakeTools(t, map[string]string{
		"git": `#!/bin/sh
if [ "$3" = "user.name" ]; then
  echo "Git Name"
  exit 0
fi
exit 1
`,
	})
	got = resolveAuthor(ctx, testLogger(), config.Config{})
	if got != "Git Name" {
		t.Errorf("author = %q, want git name without email", got)
	}
}

func TestResolveAuthorFallsBackToUser(t *testing.T) {
	withFakeTools(t, map[string]string{"git": "#!/bin/sh\nexit 1\n"})
	t.Setenv("USER", "shellacct")

	got := resolveAuthor(context.Background(), testLogger(), config.Config{})
	if got != "shellacct" {
		t.Errorf("author = %q, want $USER fallback", got)
	}
}
