// Package rule implements the mdfix rewrite engine: the rule
// abstraction, the catalogue of built-in fixes, ordered rule sets, and
// the registry binding document identities to rule sets.
//
// Every rule is a pure, total transformation over document text. Rules
// never perform I/O and never fail; text a rule's pattern does not
// match passes through unchanged. Composition order is semantically
// significant and is owned by the RuleSet, not the rules.
package rule

import "strings"

// Rule is a single named text transformation addressing one
// formatting concern.
type Rule interface {
	// Code returns the stable identifier of the rule (e.g. "MD012").
	// Codes label diagnostics and listings; nothing dispatches on them.
	Code() string

	// Description returns a human-readable explanation of the rule.
	Description() string

	// Apply transforms content and returns the result. Implementations
	// must be pure and total: no I/O, no failure, termination on every
	// input.
	Apply(content string) string
}

// funcRule adapts a plain function to the Rule interface.
type funcRule struct {
	code        string
	description string
	fn          func(string) string
}

// New wraps a transformation function as a Rule.
func New(code, description string, fn func(string) string) Rule {
	return &funcRule{code: code, description: description, fn: fn}
}

func (r *funcRule) Code() string        { return r.code }
func (r *funcRule) Description() string { return r.description }

func (r *funcRule) Apply(content string) string { return r.fn(content) }

// Substitution is a single literal find/replace pair.
type Substitution struct {
	Old string
	New string
}

// NewSubstitution builds a Rule from a table of literal substitutions.
// Pairs are applied in order; every occurrence is replaced verbatim.
func NewSubstitution(code, description string, pairs []Substitution) Rule {
	return New(code, description, func(content string) string {
		for _, p := range pairs {
			content = strings.ReplaceAll(content, p.Old, p.New)
		}
		return content
	})
}
