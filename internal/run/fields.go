package run

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mkscript/mkscript/internal/cli"
	"github.com/mkscript/mkscript/internal/config"
	"github.com/mkscript/mkscript/internal/gitutil"
	"github.com/mkscript/mkscript/internal/logging"
	"github.com/mkscript/mkscript/internal/tui"
)

// resolveFields produces a value for every field the template declares.
// NAME comes from the first positional argument, DESCRIPTION from the
// remaining ones, AUTHOR from config then git then $USER, DATE from the
// clock. Anything unresolved is prompted for when interactive, otherwise
// it is an error (except DESCRIPTION, which may stay empty).
func resolveFields(ctx context.Context, log *logging.Logger, cfg config.Config, opts cli.Options, fields []string) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	interactive := !cfg.NoInput && isInteractiveTTY()

	for _, field := range fields {
		switch field {
		case "NAME":
			name := ""
			if len(opts.Args) > 0 {
				name = opts.Args[0]
			}
			if name == "" && interactive {
				entered, err := tui.PromptString(ctx, "Script name", "my-script")
				if err != nil {
					return nil, err
				}
				name = entered
			}
			if name == "" {
				return nil, fmt.Errorf("script name required: pass it as the first argument")
			}
			values[field] = name
		case "DESCRIPTION":
			description := ""
			if len(opts.Args) > 1 {
				description = strings.Join(opts.Args[1:], " ")
			}
			if description == "" && interactive {
				entered, err := tui.PromptString(ctx, "Short description", "What does this script do?")
				if err != nil {
					return nil, err
				}
				description = entered
			}
			values[field] = description
		case "AUTHOR":
			values[field] = resolveAuthor(ctx, log, cfg)
		case "DATE":
			values[field] = time.Now().Format("2006-01-02")
		default:
			if !interactive {
				return nil, fmt.Errorf("template field %s needs a value: run interactively", field)
			}
			entered, err := tui.PromptString(ctx, "Value for "+field, "")
			if err != nil {
				return nil, err
			}
			values[field] = entered
		}
	}

	return values, nil
}

func resolveAuthor(ctx context.Context, log *logging.Logger, cfg config.Config) string {
	if cfg.Author != "" {
		return cfg.Author
	}
	if name, err := gitutil.UserName(ctx); err == nil && name != "" {
		if email, err := gitutil.UserEmail(ctx); err == nil && email != "" {
			return fmt.Sprintf("%s <%s>", name, email)
		}
		return name
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	log.Debugf("no author configured, leaving AUTHOR empty")
	return ""
}
