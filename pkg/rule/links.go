package rule

import "regexp"

var imgNoAltPattern = regexp.MustCompile(`<img src="([^"]+)" width="64">`)

// NewImageAltText returns the MD045 rule: the fixed-width image tag
// used throughout the docs gains an empty alt attribute when missing.
func NewImageAltText() Rule {
	return New("MD045", "Add an empty alt attribute to fixed-width images",
		func(content string) string {
			return imgNoAltPattern.ReplaceAllString(content, `<img src="${1}" width="64" alt="">`)
		})
}

// linkFragmentFixes repairs table-of-contents anchors that drifted
// when headings elsewhere in the document were renumbered.
var linkFragmentFixes = []Substitution{
	{"[Usage & Features](#usage & features)", "[Usage & Features](#usage---features)"},
	{"[Performance](#performance)", "[Performance](#performance-1)"},
	{"[Security](#security)", "[Security](#security-1)"},
	{"[Troubleshooting](#troubleshooting)", "[Troubleshooting](#troubleshooting-1)"},
	{"[Contributing](#contributing)", "[Contributing](#contributing-1)"},
	{"[Licensing](#licensing)", "[Licensing](#licensing-1)"},
}

// NewRepairLinkFragments returns the MD051 rule: a finite table of
// literal anchor substitutions applied verbatim.
func NewRepairLinkFragments() Rule {
	return NewSubstitution("MD051", "Repair known stale link fragments", linkFragmentFixes)
}
