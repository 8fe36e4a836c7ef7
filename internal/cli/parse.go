package cli

import (
	"errors"
	"fmt"
	"strings"
)

var ErrHelp = errors.New("help requested")
var ErrVersion = errors.New("version requested")

// ErrUsage marks a malformed invocation: an unknown flag, or a value-taking
// flag with a missing or flag-shaped value. main prints the wrapped message
// together with the full usage text.
var ErrUsage = errors.New("usage error")

// Parse scans the argument vector left to right, one or two tokens per
// step. Scanning stops at the first bare "--", at the first token that is
// not a flag, or with an error at the first unknown flag. Everything not
// consumed as a flag or flag value ends up in Options.Args, order intact.
// Flag interpretation never resumes once it has stopped.
func Parse(args []string) (Options, error) {
	opts := Options{OutputDir: "."}

	i := 0
scan:
	for i < len(args) {
		switch arg := args[i]; {
		case arg == "--":
			i++
			break scan
		case arg == "-h" || arg == "--help":
			return Options{}, ErrHelp
		case arg == "--version":
			return Options{}, ErrVersion
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "-f" || arg == "--file":
			value, err := flagValue(args, i)
			if err != nil {
				return Options{}, err
			}
			opts.File = value
			i += 2
		case arg == "-o" || arg == "--output":
			value, err := flagValue(args, i)
			if err != nil {
				return Options{}, err
			}
			opts.OutputDir = value
			i += 2
		case strings.HasPrefix(arg, "-"):
			return Options{}, fmt.Errorf("%w: unknown flag %q", ErrUsage, arg)
		default:
			break scan
		}
	}

	opts.Args = args[i:]
	return opts, nil
}

// flagValue returns the token following args[i] as the value of that flag.
// A missing next token, or one that itself starts with "-", is a usage
// error: the flag must never be recognized without its value captured.
func flagValue(args []string, i int) (string, error) {
	name := args[i]
	if i+1 >= len(args) {
		return "", fmt.Errorf("%w: flag %s requires a value", ErrUsage, name)
	}
	value := args[i+1]
	if strings.HasPrefix(value, "-") {
		return "", fmt.Errorf("%w: flag %s requires a value, got %q", ErrUsage, name, value)
	}
	return value, nil
}
