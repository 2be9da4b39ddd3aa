package rule

import "slices"

// RuleSet is an ordered, immutable sequence of rules assembled for one
// document type. The order is part of the set's identity: rules are
// composed strictly left to right and many pairs are not independent
// (heading numbering must precede spacing rules that look for
// headings, for example).
type RuleSet struct {
	name  string
	rules []Rule
}

// NewRuleSet builds a rule set with the given name and rule order.
func NewRuleSet(name string, rules ...Rule) RuleSet {
	return RuleSet{name: name, rules: slices.Clone(rules)}
}

// Name returns the set's name, used in outcome reporting.
func (s RuleSet) Name() string { return s.name }

// Len returns the number of rules in the set.
func (s RuleSet) Len() int { return len(s.rules) }

// Rules returns a copy of the ordered rules.
func (s RuleSet) Rules() []Rule { return slices.Clone(s.rules) }

// Apply folds the set over content left to right. Each rule consumes
// the previous rule's output; no rule is skipped or reordered. An
// empty set returns content unchanged.
func (s RuleSet) Apply(content string) string {
	for _, r := range s.rules {
		content = r.Apply(content)
	}
	return content
}
