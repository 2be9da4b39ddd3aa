package rule

import (
	"regexp"
	"strings"
)

var (
	fenceOpenPattern  = regexp.MustCompile("([^\n])\n(```[a-z]*\n)")
	fenceClosePattern = regexp.MustCompile("\n(```)\n")
)

// NewFenceSpacing returns the MD031 rule: a fence line preceded by a
// non-blank line gains a blank line above it, and every bare fence
// line gains a blank line below it. The second insertion is
// unconditional.
func NewFenceSpacing() Rule {
	return New("MD031", "Surround fenced code blocks with blank lines",
		func(content string) string {
			content = fenceOpenPattern.ReplaceAllString(content, "${1}\n\n${2}")
			return fenceClosePattern.ReplaceAllString(content, "\n${1}\n\n")
		})
}

// bareFence is a fence line with no language tag.
const bareFence = "\n```\n"

// NewFenceLanguage returns the MD040 rule: every bare fence line is
// annotated with a language tag, by literal replacement. With a nil
// detector every bare fence gets defaultLang; otherwise the detector
// is consulted with the text up to the next fence and defaultLang is
// the fallback for an empty answer.
func NewFenceLanguage(defaultLang string, detect func(string) string) Rule {
	if defaultLang == "" {
		defaultLang = "bash"
	}
	return New("MD040", "Tag bare code fences with a language",
		func(content string) string {
			if detect == nil {
				return strings.ReplaceAll(content, bareFence, "\n```"+defaultLang+"\n")
			}
			var b strings.Builder
			rest := content
			for {
				i := strings.Index(rest, bareFence)
				if i < 0 {
					b.WriteString(rest)
					return b.String()
				}
				bodyStart := i + len(bareFence)
				tag := defaultLang
				if end := strings.Index(rest[bodyStart:], "\n```"); end >= 0 {
					if lang := detect(rest[bodyStart : bodyStart+end+1]); lang != "" {
						tag = lang
					}
				}
				b.WriteString(rest[:i])
				b.WriteString("\n```" + tag + "\n")
				rest = rest[bodyStart:]
			}
		})
}
