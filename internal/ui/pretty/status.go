package pretty

import (
	"errors"
	"strings"

	"github.com/yaklabco/mdfix/pkg/fixer"
	"github.com/yaklabco/mdfix/pkg/runner"
)

// Status glyphs for per-file outcome lines.
const (
	glyphFixed     = "✓"
	glyphUnchanged = "○"
	glyphMissing   = "✗"
	glyphSkipped   = "↷"
	glyphWouldFix  = "→"
)

// FormatFileOutcome renders the status line for one processed file.
func (s *Styles) FormatFileOutcome(fo runner.FileOutcome) string {
	switch {
	case fo.Err != nil:
		if errors.Is(fo.Err, fixer.ErrFileNotFound) {
			return s.Missing.Render(glyphMissing+" Not found:") + " " + s.FilePath.Render(fo.Path)
		}
		return s.Failure.Render(glyphMissing+" Error:") + " " +
			s.FilePath.Render(fo.Path) + " " + s.Dim.Render("("+fo.Err.Error()+")")
	case fo.Outcome == nil:
		return s.Dim.Render(glyphUnchanged+" No result:") + " " + s.FilePath.Render(fo.Path)
	case fo.Outcome.Skipped:
		return s.Skipped.Render(glyphSkipped+" Skipped:") + " " +
			s.FilePath.Render(fo.Path) + " " + s.Dim.Render("("+fo.Outcome.SkipReason+")")
	case fo.Outcome.Written:
		return s.Fixed.Render(glyphFixed+" Fixed:") + " " + s.FilePath.Render(fo.Path)
	case fo.Outcome.Changed:
		return s.WouldFix.Render(glyphWouldFix+" Would fix:") + " " + s.FilePath.Render(fo.Path)
	default:
		return s.Unchanged.Render(glyphUnchanged+" No changes:") + " " + s.FilePath.Render(fo.Path)
	}
}

// FormatDiff renders a unified diff with per-line-kind coloring.
func (s *Styles) FormatDiff(d *fixer.Diff) string {
	if d == nil {
		return ""
	}
	rendered := ""
	for _, line := range diffLines(d.String()) {
		switch {
		case len(line) > 0 && line[0] == '+':
			rendered += s.DiffAdd.Render(line) + "\n"
		case len(line) > 0 && line[0] == '-':
			rendered += s.DiffRemove.Render(line) + "\n"
		case len(line) > 0 && line[0] == '@':
			rendered += s.DiffHunk.Render(line) + "\n"
		default:
			rendered += s.DiffContext.Render(line) + "\n"
		}
	}
	return rendered
}

// diffLines splits rendered diff text, dropping the trailing empty
// element produced by the final newline.
func diffLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
