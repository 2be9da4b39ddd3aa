package rule

import (
	"fmt"
	"regexp"
	"strings"
)

var headingColonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^(### [^:\n]+):$`),
	regexp.MustCompile(`(?m)^(## [^:\n]+):$`),
}

// NewStripHeadingColons returns the MD026 rule: level-2 and level-3
// headings whose text ends with a literal colon lose the colon.
func NewStripHeadingColons() Rule {
	return New("MD026", "Remove trailing colons from headings",
		func(content string) string {
			for _, p := range headingColonPatterns {
				content = p.ReplaceAllString(content, "${1}")
			}
			return content
		})
}

// NewNumberDuplicateHeadings returns the MD024 rule. Level-3 headings
// are scanned in document order; the second and later occurrences of
// the same normalized text (colons stripped) are rewritten to carry a
// 1-based occurrence count, e.g. "### Foo (2)". The counter is local
// to a single pass, so the rule converges on its own output: numbered
// headings normalize to distinct keys.
func NewNumberDuplicateHeadings() Rule {
	return New("MD024", "Number duplicate level-3 headings",
		func(content string) string {
			seen := make(map[string]int)
			lines := strings.Split(content, "\n")
			out := make([]string, 0, len(lines))
			for _, line := range lines {
				if !strings.HasPrefix(line, "### ") {
					out = append(out, line)
					continue
				}
				base := strings.ReplaceAll(line, "### ", "")
				base = strings.TrimSpace(strings.ReplaceAll(base, ":", ""))
				seen[base]++
				if seen[base] > 1 {
					out = append(out, fmt.Sprintf("### %s (%d)", base, seen[base]))
				} else {
					out = append(out, line)
				}
			}
			return strings.Join(out, "\n")
		})
}

var (
	boldOnlyPattern   = regexp.MustCompile(`^\*\*([^*]+)\*\*$`)
	strongOnlyPattern = regexp.MustCompile(`^<strong>([^<]+)</strong>$`)
)

// NewPromoteEmphasisHeadings returns the MD036 rule: a line that is
// nothing but bold emphasis, or an explicit <strong> wrapper, becomes
// a level-3 heading. Plain bold and <strong> markers are stripped; the
// legacy space-before-close form keeps its markers.
func NewPromoteEmphasisHeadings() Rule {
	return New("MD036", "Rewrite emphasis-only lines as headings",
		func(content string) string {
			lines := strings.Split(content, "\n")
			for i, line := range lines {
				lines[i] = promoteEmphasisLine(line)
			}
			return strings.Join(lines, "\n")
		})
}

func promoteEmphasisLine(line string) string {
	// "**text **" variant: the closing marker is preceded by a space
	// and the whole line, markers included, becomes the heading text.
	if len(line) >= 6 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, " **") {
		inner := line[2 : len(line)-3]
		if inner != "" && !strings.Contains(inner, "**") {
			return "### " + line
		}
	}
	if m := boldOnlyPattern.FindStringSubmatch(line); m != nil {
		return "### " + m[1]
	}
	if m := strongOnlyPattern.FindStringSubmatch(line); m != nil {
		return "### " + m[1]
	}
	return line
}
