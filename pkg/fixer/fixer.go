// Package fixer orchestrates the per-file fix pipeline: load the
// document, apply its rule set, compare, and conditionally persist.
package fixer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdfix/pkg/fsutil"
	"github.com/yaklabco/mdfix/pkg/rule"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the target document does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrWriteFailure indicates the fixed content could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// Options control pipeline behavior.
type Options struct {
	// Check reports would-be changes without writing anything.
	Check bool

	// Backup writes a sidecar backup before the first modification.
	Backup bool

	// ValidateOutput re-parses the transformed text as Markdown and
	// skips the write when rendering fails. Rules stay raw-text; this
	// is a guard on their combined output, not a rule input.
	ValidateOutput bool
}

// Outcome records the result of processing one document.
type Outcome struct {
	// Path is the document that was processed.
	Path string

	// RuleSet is the name of the rule set that was applied.
	RuleSet string

	// Changed is true when the applied rules altered the content.
	Changed bool

	// Written is true when the new content was persisted.
	Written bool

	// Skipped is true when a change was withheld (concurrent
	// modification or failed validation).
	Skipped bool

	// SkipReason explains a skip.
	SkipReason string

	// BackupCreated is true when a sidecar backup was written.
	BackupCreated bool

	// Diff holds the would-be change in check mode.
	Diff *Diff
}

// Status returns the human-readable per-file status word.
func (o *Outcome) Status() string {
	switch {
	case o.Skipped:
		return "skipped: " + o.SkipReason
	case o.Written:
		return "fixed"
	case o.Changed:
		return "would fix"
	default:
		return "no changes"
	}
}

// Pipeline processes documents against a registry of rule sets.
type Pipeline struct {
	registry *rule.Registry
}

// New creates a pipeline resolving rule sets through registry.
func New(registry *rule.Registry) *Pipeline {
	return &Pipeline{registry: registry}
}

// ProcessFile runs the pipeline for one document. A non-nil override
// replaces the registry lookup. The pipeline steps are:
//
//  1. Read the document and capture its state.
//  2. Fold the rule set over the content.
//  3. Compare output to input; identical content is a normal
//     "no changes" outcome, not an error.
//  4. Otherwise validate (optional), re-check the on-disk state,
//     back up (optional), and write atomically. In check mode a
//     unified diff is produced instead of steps 4's writes.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, override *rule.RuleSet, opts Options) (*Outcome, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	outcome, fixed := p.transform(path, string(content), override)
	if !outcome.Changed {
		return outcome, nil
	}

	if opts.ValidateOutput {
		if err := ValidateMarkdown([]byte(fixed)); err != nil {
			outcome.Skipped = true
			outcome.SkipReason = fmt.Sprintf("output failed to parse: %v", err)
			return outcome, nil
		}
	}

	if opts.Check {
		outcome.Diff = NewDiff(path, string(content), fixed)
		return outcome, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		outcome.Skipped = true
		outcome.SkipReason = "file modified during processing"
		return outcome, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		outcome.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(fixed), info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	outcome.Written = true
	return outcome, nil
}

// ProcessContent applies the pipeline's transform step to in-memory
// content, without any file I/O. Useful for tests and check tooling.
func (p *Pipeline) ProcessContent(path, content string, override *rule.RuleSet) (*Outcome, string) {
	return p.transform(path, content, override)
}

func (p *Pipeline) transform(path, content string, override *rule.RuleSet) (*Outcome, string) {
	set := p.registry.Resolve(path)
	if override != nil {
		set = *override
	}
	fixed := set.Apply(content)
	return &Outcome{
		Path:    path,
		RuleSet: set.Name(),
		Changed: fixed != content,
	}, fixed
}

// categorizeError wraps read errors with the pipeline's sentinel types
// using errors.Is rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return err
}
