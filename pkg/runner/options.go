package runner

import "github.com/yaklabco/mdfix/pkg/fixer"

// DefaultDocsDir is where the known documents live relative to the
// repository root.
const DefaultDocsDir = "docs"

// Options control a batch run.
type Options struct {
	// Files is the explicit list of target documents.
	Files []string

	// All expands the working set to every known document identity in
	// the registry that exists under DocsDir. Takes precedence over
	// Files.
	All bool

	// DocsDir is the directory searched by All. Empty means
	// DefaultDocsDir.
	DocsDir string

	// ForceSet names a rule set to apply to every file in the batch,
	// overriding per-file registry resolution. Empty means resolve
	// per file.
	ForceSet string

	// Jobs is the number of parallel workers. Zero or negative means
	// one worker per CPU.
	Jobs int

	// Pipeline carries the per-file processing options.
	Pipeline fixer.Options
}

func (o Options) effectiveDocsDir() string {
	if o.DocsDir == "" {
		return DefaultDocsDir
	}
	return o.DocsDir
}
