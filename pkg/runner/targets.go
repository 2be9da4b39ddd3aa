package runner

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdfix/pkg/rule"
)

// ErrNoTargets is the usage error returned when neither explicit files
// nor the all-documents expansion were requested.
var ErrNoTargets = errors.New("no files given and --all not set")

// ResolveTargets produces the working set of file paths for a run.
// With All set, every registry identity that exists under the docs
// directory is included, in the registry's sorted identity order.
// Otherwise the explicit file list is used as given.
func ResolveTargets(opts Options, registry *rule.Registry) ([]string, error) {
	if opts.All {
		docsDir := opts.effectiveDocsDir()
		var targets []string
		for _, identity := range registry.Identities() {
			path := filepath.Join(docsDir, identity)
			if _, err := os.Stat(path); err == nil {
				targets = append(targets, path)
			}
		}
		return targets, nil
	}
	if len(opts.Files) > 0 {
		return opts.Files, nil
	}
	return nil, ErrNoTargets
}
