package rule

import (
	"regexp"
	"strings"
)

var (
	blankRunPattern    = regexp.MustCompile(`\n{3,}`)
	trailingRunPattern = regexp.MustCompile(`\n+$`)
)

// NewCollapseBlankLines returns the MD012 rule: every run of three or
// more consecutive newlines collapses to exactly two, leaving at most
// one blank line between blocks.
func NewCollapseBlankLines() Rule {
	return New("MD012", "Collapse multiple consecutive blank lines",
		func(content string) string {
			return blankRunPattern.ReplaceAllString(content, "\n\n")
		})
}

// NewFinalNewline returns the MD047 rule: the document ends with
// exactly one newline character. A missing newline is appended and any
// run of trailing newlines is collapsed to one.
func NewFinalNewline() Rule {
	return New("MD047", "End file with a single trailing newline",
		func(content string) string {
			if !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			return trailingRunPattern.ReplaceAllString(content, "\n")
		})
}
