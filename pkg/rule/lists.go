package rule

import "regexp"

var (
	indentedDashPattern = regexp.MustCompile(`(?m)^  - `)
	indentedStarPattern = regexp.MustCompile(`(?m)^  \* `)
)

// NewOutdentListMarkers returns the MD030 rule: list markers indented
// by exactly two spaces move back to column zero.
func NewOutdentListMarkers() Rule {
	return New("MD030", "Outdent two-space-indented list markers",
		func(content string) string {
			content = indentedDashPattern.ReplaceAllString(content, "- ")
			return indentedStarPattern.ReplaceAllString(content, "* ")
		})
}

// headingBulletPatterns pair a heading or bold lead-in line with a
// bullet that opens with one of the recognized status symbols. The
// level-3 pattern runs first; once it has inserted a blank line the
// level-2 pattern no longer matches the same spot.
var headingBulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(### [^\n]+)\n(- [✅🔧🚀📊])`),
	regexp.MustCompile(`(## [^\n]+)\n(- [✅🔧🚀📊])`),
	regexp.MustCompile(`(\*\*[^\n]+\*\*)\n(- [✅🔧🚀📊])`),
}

// NewBlankLineBeforeBullets returns the MD032 rule: a blank line is
// inserted between a heading (level 2 or 3) or a bold-only line and an
// immediately following status bullet.
func NewBlankLineBeforeBullets() Rule {
	return New("MD032", "Insert a blank line between headings and status bullets",
		func(content string) string {
			for _, p := range headingBulletPatterns {
				content = p.ReplaceAllString(content, "${1}\n\n${2}")
			}
			return content
		})
}
