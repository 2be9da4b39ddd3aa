package rule

// Names of the built-in rule sets.
const (
	SetContributing = "contributing"
	SetFAQ          = "faq"
	SetPRD          = "prd"
	SetUserGuide    = "user-guide"
	SetAPIReference = "api-reference"
	SetDefault      = "default"
)

// Options configures rule construction for the default registry.
type Options struct {
	// MaxLineLength bounds the line-wrap rule. Zero means
	// DefaultMaxLineLength.
	MaxLineLength int

	// DefaultLanguage is the tag applied to bare code fences.
	// Empty means "bash".
	DefaultLanguage string

	// DetectLanguage, when non-nil, is consulted with a fence body to
	// choose a language tag; DefaultLanguage remains the fallback.
	DetectLanguage func(string) string
}

// NewDefaultRegistry builds the registry for the documents this tool
// maintains. Each document type accumulates a different class of
// drift, so each gets its own ordered rule list; anything unrecognized
// falls back to the two rules that are safe on arbitrary text.
func NewDefaultRegistry(opts Options) *Registry {
	collapse := NewCollapseBlankLines()
	finalNewline := NewFinalNewline()
	dedupe := NewNumberDuplicateHeadings()
	colons := NewStripHeadingColons()
	outdent := NewOutdentListMarkers()
	fences := NewFenceSpacing()
	bullets := NewBlankLineBeforeBullets()
	emphasis := NewPromoteEmphasisHeadings()
	language := NewFenceLanguage(opts.DefaultLanguage, opts.DetectLanguage)
	fragments := NewRepairLinkFragments()
	wrap := NewWrapLongLines(opts.MaxLineLength)

	reg := NewRegistry(NewRuleSet(SetDefault, collapse, finalNewline))

	reg.Bind("CONTRIBUTING.md", NewRuleSet(SetContributing,
		colons, wrap, collapse, language, finalNewline, outdent, fences))
	reg.Bind("FAQ.md", NewRuleSet(SetFAQ,
		emphasis, bullets, language, dedupe, collapse, finalNewline, fragments))
	reg.Bind("prd.md", NewRuleSet(SetPRD,
		outdent, collapse, fences, wrap, finalNewline))
	reg.Bind("USER_GUIDE.md", NewRuleSet(SetUserGuide, collapse, finalNewline))
	reg.Bind("API_REFERENCE.md", NewRuleSet(SetAPIReference, collapse, finalNewline))

	return reg
}

// Catalogue returns one instance of every built-in rule, in code
// order, for listings and documentation.
func Catalogue(opts Options) []Rule {
	return []Rule{
		NewCollapseBlankLines(),
		NewWrapLongLines(opts.MaxLineLength),
		NewNumberDuplicateHeadings(),
		NewStripHeadingColons(),
		NewOutdentListMarkers(),
		NewFenceSpacing(),
		NewBlankLineBeforeBullets(),
		NewPromoteEmphasisHeadings(),
		NewFenceLanguage(opts.DefaultLanguage, opts.DetectLanguage),
		NewImageAltText(),
		NewFinalNewline(),
		NewRepairLinkFragments(),
	}
}
