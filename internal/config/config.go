// Package config resolves mkscript settings from built-in defaults, an
// optional .mkscript.yaml in the working directory, and MKSCRIPT_*
// environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

const fileName = ".mkscript.yaml"

// Config holds the resolved settings for a run.
type Config struct {
	// TemplateRepo is an owner/name GitHub repository to list templates
	// from. Empty means the built-in template only.
	TemplateRepo string `yaml:"template_repo" env:"MKSCRIPT_TEMPLATE_REPO"`
	// TemplateDir is the directory inside TemplateRepo that holds templates.
	TemplateDir string `yaml:"template_dir" env:"MKSCRIPT_TEMPLATE_DIR"`
	// TemplateRef pins a branch, tag, or commit. Empty uses the default branch.
	TemplateRef string `yaml:"template_ref" env:"MKSCRIPT_TEMPLATE_REF"`
	// Author fills the AUTHOR template field. Empty falls back to git config.
	Author string `yaml:"author" env:"MKSCRIPT_AUTHOR"`
	// GitInit creates a git repository in the output directory after writing.
	GitInit bool `yaml:"git_init" env:"MKSCRIPT_GIT_INIT"`
	// Edit opens the generated script in the user's editor.
	Edit bool `yaml:"edit" env:"MKSCRIPT_EDIT"`
	// NoInput disables prompts; anything that would prompt fails instead.
	NoInput bool `yaml:"no_input" env:"MKSCRIPT_NO_INPUT"`
	// GitHubToken authenticates template repo requests. Never read from the
	// YAML file, only from the environment.
	GitHubToken string `yaml:"-" env:"GITHUB_TOKEN"`
}

func defaults() Config {
	return Config{
		TemplateDir: "templates",
	}
}

// Load resolves configuration for the working directory dir. A missing
// .mkscript.yaml is fine; a malformed one is an error.
func Load(dir string) (Config, error) {
	cfg := defaults()

	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", fileName, err)
			}
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", fileName, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("environment parse failed: %w", err)
	}

	return cfg, nil
}
