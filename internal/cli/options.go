package cli

// Options is the fully-parsed configuration for a single invocation.
//
// Parse is the only writer; everything downstream treats the value as
// read-only. Args keeps the positional tail exactly as it appeared on the
// command line.
type Options struct {
	Verbose   bool
	File      string // local template file; empty means the template repository or the built-in
	OutputDir string // defaults to "."

	Args []string
}
