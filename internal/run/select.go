package run

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mkscript/mkscript/internal/cli"
	"github.com/mkscript/mkscript/internal/config"
	"github.com/mkscript/mkscript/internal/github"
	"github.com/mkscript/mkscript/internal/logging"
	"github.com/mkscript/mkscript/internal/template"
	"github.com/mkscript/mkscript/internal/tui"
	"golang.org/x/term"
)

// templateSource is resolved template content and the name it came from.
type templateSource struct {
	Name    string
	Content []byte
}

// resolveTemplate picks the template content for this run: an explicit
// local file wins, then a configured template repository, then the
// built-in template.
func resolveTemplate(ctx context.Context, log *logging.Logger, cfg config.Config, opts cli.Options) (templateSource, error) {
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return templateSource{}, fmt.Errorf("read template file: %w", err)
		}
		return templateSource{Name: filepath.Base(opts.File), Content: data}, nil
	}

	if cfg.TemplateRepo != "" {
		return fetchFromRepo(ctx, log, cfg)
	}

	return templateSource{Name: "builtin", Content: []byte(template.Default)}, nil
}

func fetchFromRepo(ctx context.Context, log *logging.Logger, cfg config.Config) (templateSource, error) {
	client, err := github.NewClient(github.ClientConfig{
		Repo:  cfg.TemplateRepo,
		Dir:   cfg.TemplateDir,
		Ref:   cfg.TemplateRef,
		Token: cfg.GitHubToken,
	})
	if err != nil {
		return templateSource{}, err
	}

	log.Debugf("listing templates in %s/%s", cfg.TemplateRepo, cfg.TemplateDir)
	templates, err := client.ListTemplates(ctx)
	if err != nil {
		return templateSource{}, err
	}
	if len(templates) == 0 {
		return templateSource{}, fmt.Errorf("no templates found in %s/%s", cfg.TemplateRepo, cfg.TemplateDir)
	}

	chosen, err := selectTemplateInteractive(ctx, cfg, templates)
	if err != nil {
		return templateSource{}, err
	}

	content, err := client.Fetch(ctx, chosen)
	if err != nil {
		return templateSource{}, err
	}
	log.Debugf("fetched %s (%s)", chosen.Name, humanize.IBytes(uint64(len(content))))
	return templateSource{Name: chosen.Name, Content: content}, nil
}

func selectTemplateInteractive(ctx context.Context, cfg config.Config, templates []github.Template) (github.Template, error) {
	if len(templates) == 1 {
		return templates[0], nil
	}
	if cfg.NoInput {
		return templates[0], nil
	}
	if isInteractiveTTY() {
		choices := make([]tui.TemplateChoice, 0, len(templates))
		for _, tmpl := range templates {
			choices = append(choices, tui.TemplateChoice{Name: tmpl.Name, Path: tmpl.Path, Size: tmpl.Size})
		}
		choice, err := tui.SelectTemplate(ctx, choices)
		if err != nil {
			return github.Template{}, err
		}
		for _, tmpl := range templates {
			if tmpl.Path == choice.Path {
				return tmpl, nil
			}
		}
		return github.Template{}, fmt.Errorf("selected template %s not found", choice.Name)
	}
	return selectTemplatePrompt(templates)
}

func selectTemplatePrompt(templates []github.Template) (github.Template, error) {
	fmt.Fprintln(os.Stdout, "Available templates:")
	for i, tmpl := range templates {
		fmt.Fprintf(os.Stdout, "  %d) %s\n", i+1, tmpl.Name)
	}

	reader := bufio.NewReader(os.Stdin)
	for attempt := 0; attempt < 3; attempt++ {
		fmt.Fprintf(os.Stdout, "Select a template [1-%d]: ", len(templates))
		line, err := reader.ReadString('\n')
		if err != nil {
			return github.Template{}, fmt.Errorf("read selection: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(templates) {
			fmt.Fprintln(os.Stdout, "Invalid selection.")
			continue
		}
		return templates[idx-1], nil
	}

	return github.Template{}, fmt.Errorf("invalid selection")
}

func isInteractiveTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
