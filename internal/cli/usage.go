package cli

import (
	"fmt"
	"strings"
)

// Usage renders the full help document. It depends on nothing but the
// program name, which main derives from the invoking path.
func Usage(program string) string {
	return strings.TrimSpace(fmt.Sprintf(`Usage:
  %[1]s [flags] [name [description ...]]

Create a new shell script from a template. Templates come from a local
file (--file), from a GitHub template repository (MKSCRIPT_TEMPLATE_REPO),
or from the built-in boilerplate. The first argument names the script and
the rest become its description; template fields such as {{NAME}},
{{DESCRIPTION}}, {{AUTHOR}} and {{DATE}} are filled in on the way.
Settings may also be placed in a .mkscript.yaml in the working directory.

Flags:
  -h, --help          Show this help and exit
  -v, --verbose       Enable debug logging
  -f, --file <path>   Use a local template file
  -o, --output <dir>  Directory to write the script into (default ".")
      --version       Print version and exit
  --                  Treat every following argument as a name or description

Environment:
  MKSCRIPT_TEMPLATE_REPO  Template repository as owner/name (unset: built-in template)
  MKSCRIPT_TEMPLATE_DIR   Directory inside the repository (default "templates")
  MKSCRIPT_TEMPLATE_REF   Git ref to read templates from (default: repository default branch)
  MKSCRIPT_AUTHOR         Value for the AUTHOR field (default: git config, then $USER)
  GITHUB_TOKEN            Token for GitHub API requests; anonymous works
  MKSCRIPT_GIT_INIT       Run "git init" in the output directory when true
  MKSCRIPT_EDIT           Open the new script in $VISUAL or $EDITOR when true
  MKSCRIPT_NO_INPUT       Never prompt, even on a TTY

Examples:
  %[1]s deploy.sh
  %[1]s backup "nightly backup runner"
  %[1]s -f ./my-template.sh -o ./scripts backup
  %[1]s -v -o ~/bin sync-photos
  %[1]s -- -starts-with-dash
`, program))
}
