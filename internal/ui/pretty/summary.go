package pretty

import (
	"fmt"

	"github.com/yaklabco/mdfix/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummary renders the end-of-run line. In check mode the count
// covers files that would change; otherwise files actually written.
func (s *Styles) FormatSummary(stats runner.Stats, check bool) string {
	if check {
		n := stats.FilesChanged
		msg := s.SummaryTitle.Render(fmt.Sprintf("Check complete: %d %s would be fixed", n, pluralFile(n)))
		return msg + s.Dim.Render(fmt.Sprintf(" (%d checked)", stats.FilesTargeted)) + "\n"
	}

	msg := s.SummaryTitle.Render(fmt.Sprintf("Completed: %d %s fixed", stats.FilesFixed, pluralFile(stats.FilesFixed)))
	if stats.FilesMissing > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d missing", stats.FilesMissing))
	}
	if stats.FilesSkipped > 0 {
		msg += ", " + s.Skipped.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesUnchanged > 0 {
		msg += s.Dim.Render(fmt.Sprintf(" (%d already clean)", stats.FilesUnchanged))
	}
	return msg + "\n"
}

func pluralFile(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
