package deps

import (
	"os/exec"
	"strings"

	"github.com/mkscript/mkscript/internal/logging"
)

// Required lists the external tools mkscript invokes. The check is
// all-or-nothing: every name must resolve on PATH before any work starts.
var Required = []string{"git", "bash"}

// Missing returns the subset of tools that do not resolve on PATH,
// preserving the input order.
func Missing(tools []string) []string {
	var missing []string
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}

// Check verifies every tool resolves. Each missing tool is reported as its
// own ERROR line; the return value is the number of missing tools, which
// the caller uses as the process exit code.
func Check(log *logging.Logger, tools []string) int {
	missing := Missing(tools)
	if len(missing) == 0 {
		log.Debugf("all required tools present: %s", strings.Join(tools, ", "))
		return 0
	}
	for _, tool := range missing {
		log.Errorf("required tool %q not found in PATH", tool)
	}
	return len(missing)
}
