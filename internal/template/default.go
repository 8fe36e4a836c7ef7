package template

// Default is the built-in template used when no template repository is
// configured and no local template file is given. It scaffolds a bash
// script with strict mode, a flag parser, a dependency check, and leveled
// logging.
const Default = `#!/usr/bin/env bash
#
# {{NAME}} - {{DESCRIPTION}}
#
# Author: {{AUTHOR}}
# Created: {{DATE}}

set -Eeuo pipefail
trap cleanup SIGINT SIGTERM ERR EXIT

SCRIPT_NAME=$(basename "${BASH_SOURCE[0]}")

REQUIRED_TOOLS=(git curl)

VERBOSE=0
INPUT_FILE=""
OUTPUT_DIR="."
ARGS=()

cleanup() {
  trap - SIGINT SIGTERM ERR EXIT
}

setup_colors() {
  if [[ -t 2 && -z "${NO_COLOR:-}" && "${TERM:-}" != "dumb" ]]; then
    RED=$'\033[0;31m' GREEN=$'\033[0;32m' YELLOW=$'\033[1;33m' BLUE=$'\033[0;34m' GRAY=$'\033[0;90m' RESET=$'\033[0m'
  else
    RED='' GREEN='' YELLOW='' BLUE='' GRAY='' RESET=''
  fi
}

log() {
  local level=$1
  shift
  local stamp
  stamp=$(date '+%Y-%m-%d %H:%M:%S')
  case $level in
    DEBUG)
      if [[ $VERBOSE -eq 1 ]]; then
        printf '%s %sDEBUG%s   %s\n' "$stamp" "$GRAY" "$RESET" "$*"
      fi
      ;;
    INFO)    printf '%s %sINFO%s    %s\n' "$stamp" "$BLUE" "$RESET" "$*" ;;
    SUCCESS) printf '%s %sSUCCESS%s %s\n' "$stamp" "$GREEN" "$RESET" "$*" ;;
    WARN)    printf '%s %sWARN%s    %s\n' "$stamp" "$YELLOW" "$RESET" "$*" ;;
    ERROR)   printf '%s %sERROR%s   %s\n' "$stamp" "$RED" "$RESET" "$*" 1>&2 ;;
    *)       printf '%s %s %s\n' "$stamp" "$level" "$*" ;;
  esac
}

die() {
  log ERROR "$*"
  exit 1
}

usage() {
  cat <<EOF
Usage: $SCRIPT_NAME [-h] [-v] [-f FILE] [-o DIR] [args...]

{{DESCRIPTION}}

Flags:
  -h, --help      show this help and exit
  -v, --verbose   enable debug output
  -f, --file      input file
  -o, --output    output directory (default: current directory)
EOF
  exit 0
}

check_deps() {
  local missing=0
  for tool in "${REQUIRED_TOOLS[@]}"; do
    if ! command -v "$tool" >/dev/null 2>&1; then
      log ERROR "required tool not found: $tool"
      missing=$((missing + 1))
    fi
  done
  if [[ $missing -gt 0 ]]; then
    exit "$missing"
  fi
  log DEBUG "all required tools present: ${REQUIRED_TOOLS[*]}"
}

parse_params() {
  while [[ $# -gt 0 ]]; do
    case $1 in
      -h | --help) usage ;;
      -v | --verbose)
        VERBOSE=1
        log DEBUG "verbose output enabled"
        ;;
      -f | --file)
        [[ $# -ge 2 && ${2:0:1} != "-" ]] || die "flag $1 requires a value"
        INPUT_FILE=$2
        shift
        ;;
      -o | --output)
        [[ $# -ge 2 && ${2:0:1} != "-" ]] || die "flag $1 requires a value"
        OUTPUT_DIR=$2
        shift
        ;;
      --)
        shift
        break
        ;;
      -*) die "unknown flag: $1" ;;
      *) break ;;
    esac
    shift
  done
  ARGS=("$@")
}

main() {
  setup_colors
  check_deps
  parse_params "$@"

  log INFO "starting $SCRIPT_NAME"
  # TODO: replace with the real work
  log SUCCESS "done"
}

main "$@"
`
