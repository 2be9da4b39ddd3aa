package runner

import (
	"errors"

	"github.com/yaklabco/mdfix/pkg/fixer"
)

// FileOutcome pairs a target path with its processing result.
type FileOutcome struct {
	// Path is the target document.
	Path string

	// Outcome is the pipeline result; nil when Err is set.
	Outcome *fixer.Outcome

	// Err is set when the file could not be processed. A missing file
	// lands here and the batch continues.
	Err error
}

// Stats aggregates a batch run.
type Stats struct {
	// FilesTargeted is the size of the resolved working set.
	FilesTargeted int

	// FilesFixed counts files whose new content was written.
	FilesFixed int

	// FilesChanged counts files whose content the rules altered,
	// whether or not it was written (check mode counts here).
	FilesChanged int

	// FilesUnchanged counts files the rules left byte-identical.
	FilesUnchanged int

	// FilesSkipped counts files withheld by a pipeline guard.
	FilesSkipped int

	// FilesMissing counts files that did not exist.
	FilesMissing int

	// FilesErrored counts files that failed for any other reason.
	FilesErrored int
}

// Result is the overall batch result, ordered by the working set.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(fo FileOutcome) {
	r.Files = append(r.Files, fo)

	if fo.Err != nil {
		if errors.Is(fo.Err, fixer.ErrFileNotFound) {
			r.Stats.FilesMissing++
		} else {
			r.Stats.FilesErrored++
		}
		return
	}
	if fo.Outcome == nil {
		return
	}

	switch {
	case fo.Outcome.Skipped:
		r.Stats.FilesSkipped++
	case fo.Outcome.Changed:
		r.Stats.FilesChanged++
		if fo.Outcome.Written {
			r.Stats.FilesFixed++
		}
	default:
		r.Stats.FilesUnchanged++
	}
}
