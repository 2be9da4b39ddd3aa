package rule

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLineLength is the line-length bound used when no explicit
// limit is configured.
const DefaultMaxLineLength = 120

// NewWrapLongLines returns the MD013 rule: lines longer than maxLen
// are split into continuation segments at the CJK comma or at ". ".
// Lines containing a table pipe or a backtick are never touched, as
// tables and inline code are assumed pre-formatted. Lengths are
// counted in runes, matching the documents' mixed-width text.
func NewWrapLongLines(maxLen int) Rule {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	return New("MD013", "Wrap lines exceeding the maximum length",
		func(content string) string {
			lines := strings.Split(content, "\n")
			out := make([]string, 0, len(lines))
			for _, line := range lines {
				out = append(out, wrapLine(line, maxLen)...)
			}
			return strings.Join(out, "\n")
		})
}

func wrapLine(line string, maxLen int) []string {
	if utf8.RuneCountInString(line) <= maxLen || strings.ContainsAny(line, "|`") {
		return []string{line}
	}
	switch {
	case strings.Contains(line, "，"):
		return splitAtToken(line, "，", 1, maxLen)
	case strings.Contains(line, ". "):
		return splitAtToken(line, ". ", 2, maxLen)
	default:
		return []string{line}
	}
}

// splitAtToken accumulates token-separated segments into lines while
// the running rune length stays within maxLen, then starts a new
// continuation line indented by two spaces and prefixed by the token.
// A single segment longer than maxLen is left whole.
func splitAtToken(line, token string, tokenLen, maxLen int) []string {
	parts := strings.Split(line, token)
	current := parts[0]
	var out []string
	for _, part := range parts[1:] {
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(part)+tokenLen <= maxLen {
			current += token + part
		} else {
			out = append(out, current)
			current = "  " + token + strings.TrimSpace(part)
		}
	}
	return append(out, current)
}
