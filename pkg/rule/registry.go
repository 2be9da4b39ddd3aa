package rule

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Registry maps a document identity (the file's base name, exact
// string match) to the rule set maintained for it. Identities without
// a binding resolve to the fallback set. A Registry is built once at
// process start and read-only afterwards.
type Registry struct {
	byIdentity map[string]RuleSet
	fallback   RuleSet
}

// NewRegistry creates a registry with the given fallback set.
func NewRegistry(fallback RuleSet) *Registry {
	return &Registry{
		byIdentity: make(map[string]RuleSet),
		fallback:   fallback,
	}
}

// Bind associates a document identity with a rule set, replacing any
// earlier binding. Bind is a construction-time operation only.
func (r *Registry) Bind(identity string, set RuleSet) {
	r.byIdentity[identity] = set
}

// Resolve returns the rule set for the base name of path, falling back
// to the universal set for unrecognized identities.
func (r *Registry) Resolve(path string) RuleSet {
	if set, ok := r.byIdentity[filepath.Base(path)]; ok {
		return set
	}
	return r.fallback
}

// Lookup returns the set bound to identity and whether an exact
// binding exists.
func (r *Registry) Lookup(identity string) (RuleSet, bool) {
	set, ok := r.byIdentity[identity]
	return set, ok
}

// Fallback returns the universal rule set.
func (r *Registry) Fallback() RuleSet { return r.fallback }

// Identities returns the known document names in sorted order.
func (r *Registry) Identities() []string {
	return slices.Sorted(maps.Keys(r.byIdentity))
}

// NamedSet returns the rule set carrying the given name, matching
// case-insensitively across bound sets and the fallback. Used by the
// --rules override to force one set across a whole batch.
func (r *Registry) NamedSet(name string) (RuleSet, bool) {
	for _, identity := range r.Identities() {
		set := r.byIdentity[identity]
		if strings.EqualFold(set.Name(), name) {
			return set, true
		}
	}
	if strings.EqualFold(r.fallback.Name(), name) {
		return r.fallback, true
	}
	return RuleSet{}, false
}
