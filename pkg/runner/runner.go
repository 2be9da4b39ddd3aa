// Package runner resolves the working set for a batch run and drives
// the per-file pipeline across it.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/mdfix/internal/logging"
	"github.com/yaklabco/mdfix/pkg/fixer"
	"github.com/yaklabco/mdfix/pkg/rule"
)

// Runner drives a fixer.Pipeline over a batch of documents.
type Runner struct {
	Pipeline *fixer.Pipeline
	Registry *rule.Registry
}

// New creates a Runner for the given pipeline and registry.
func New(pipeline *fixer.Pipeline, registry *rule.Registry) *Runner {
	return &Runner{Pipeline: pipeline, Registry: registry}
}

// Run resolves targets and processes them, returning per-file outcomes
// in working-set order plus aggregate stats. Files are independent, so
// they are processed by a small worker pool; rule sets are immutable
// and safe to share, and aggregation happens on the collecting side
// only. A missing file is recorded and the batch continues.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := ResolveTargets(opts, r.Registry)
	if err != nil {
		return nil, err
	}

	var override *rule.RuleSet
	if opts.ForceSet != "" {
		set, ok := r.Registry.NamedSet(opts.ForceSet)
		if !ok {
			return nil, fmt.Errorf("unknown rule set %q", opts.ForceSet)
		}
		override = &set
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesTargeted = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, override, opts.Pipeline)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; rebuild working-set order at the end.
	outcomes := make(map[string]FileOutcome, len(files))
	for fo := range outCh {
		outcomes[fo.Path] = fo
	}
	for _, path := range files {
		if fo, ok := outcomes[path]; ok {
			result.accumulate(fo)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	override *rule.RuleSet,
	opts fixer.Options,
) {
	logger := logging.FromContext(ctx)
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fo := FileOutcome{Path: path}
		outcome, err := r.Pipeline.ProcessFile(ctx, path, override, opts)
		if err != nil {
			fo.Err = err
			logger.Debug("file processing failed",
				logging.FieldPath, path,
				logging.FieldError, err,
			)
		} else {
			fo.Outcome = outcome
			logger.Debug("processed file",
				logging.FieldPath, path,
				logging.FieldStatus, outcome.Status(),
			)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- fo:
		}
	}
}
