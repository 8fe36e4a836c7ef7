package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkscript/mkscript/internal/cli"
	"github.com/mkscript/mkscript/internal/config"
	"github.com/mkscript/mkscript/internal/deps"
	"github.com/mkscript/mkscript/internal/gitutil"
	"github.com/mkscript/mkscript/internal/lint"
	"github.com/mkscript/mkscript/internal/logging"
	"github.com/mkscript/mkscript/internal/scaffold"
	"github.com/mkscript/mkscript/internal/template"
	"github.com/mkscript/mkscript/internal/tui"
)

// Run executes one scaffolding pass and returns the process exit code.
func Run(ctx context.Context, opts cli.Options) int {
	log := logging.New(os.Stdout, os.Stderr, opts.Verbose)
	log.Debugf("verbose logging enabled")

	if missing := deps.Check(log, deps.Required); missing > 0 {
		return missing
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Errorf("get working directory: %v", err)
		return 2
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	source, err := resolveTemplate(ctx, log, cfg, opts)
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			return 0
		}
		log.Errorf("%v", err)
		return 2
	}
	log.Debugf("using template %s", source.Name)

	doc, err := template.Parse(source.Content)
	if err != nil {
		log.Errorf("template %s: %v", source.Name, err)
		return 2
	}

	values, err := resolveFields(ctx, log, cfg, opts, doc.FieldNames())
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			return 0
		}
		log.Errorf("%v", err)
		return 2
	}

	rendered, err := template.Render(doc, values)
	if err != nil {
		log.Errorf("render template: %v", err)
		return 2
	}

	path := filepath.Join(opts.OutputDir, scriptFileName(scriptName(opts, values)))
	wrote, err := writeWithConfirm(ctx, log, cfg, path, rendered)
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			return 0
		}
		log.Errorf("%v", err)
		return 2
	}
	if !wrote {
		return 0
	}

	if err := lint.Syntax(ctx, path); err != nil {
		log.Errorf("%v", err)
		return 2
	}
	if ran, err := lint.Shellcheck(ctx, path); !ran {
		log.Debugf("shellcheck not installed, skipping lint")
	} else if err != nil {
		log.Warnf("%v", err)
	}

	if cfg.GitInit {
		if err := initRepo(ctx, log, opts.OutputDir); err != nil {
			log.Errorf("%v", err)
			return 2
		}
	}

	log.Successf("created %s", path)

	if cfg.Edit {
		if !isInteractiveTTY() {
			log.Debugf("not a terminal, skipping editor")
		} else if err := scaffold.OpenInEditor(path); err != nil {
			log.Errorf("%v", err)
			return 2
		}
	}

	return 0
}

// scriptName prefers the NAME field, then the first positional argument.
func scriptName(opts cli.Options, values map[string]string) string {
	if name := values["NAME"]; name != "" {
		return name
	}
	if len(opts.Args) > 0 {
		return opts.Args[0]
	}
	return "script"
}

func scriptFileName(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + ".sh"
}

func writeWithConfirm(ctx context.Context, log *logging.Logger, cfg config.Config, path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		if cfg.NoInput || !isInteractiveTTY() {
			return false, fmt.Errorf("refusing to overwrite %s (run interactively to confirm)", path)
		}
		overwrite, err := tui.Confirm(ctx, fmt.Sprintf("Overwrite %s?", filepath.Base(path)))
		if err != nil {
			return false, err
		}
		if !overwrite {
			log.Warnf("kept existing %s", path)
			return false, nil
		}
		if err := scaffold.WriteScript(path, content, true); err != nil {
			return false, err
		}
		log.Infof("previous version saved to %s.mkscript.bak", path)
		return true, nil
	}

	if err := scaffold.WriteScript(path, content, false); err != nil {
		return false, err
	}
	return true, nil
}

func initRepo(ctx context.Context, log *logging.Logger, dir string) error {
	if root, err := gitutil.RepoRoot(ctx, dir); err == nil {
		log.Debugf("already inside git repository %s, skipping git init", root)
		return nil
	}
	if err := gitutil.Init(ctx, dir); err != nil {
		return err
	}
	log.Infof("initialized git repository in %s", dir)
	return nil
}
