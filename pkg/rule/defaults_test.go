package rule_test

import (
	"testing"

	"github.com/yaklabco/mdfix/pkg/rule"
)

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := rule.NewDefaultRegistry(rule.Options{})

	t.Run("known documents are bound", func(t *testing.T) {
		t.Parallel()

		bindings := map[string]string{
			"CONTRIBUTING.md":  rule.SetContributing,
			"FAQ.md":           rule.SetFAQ,
			"prd.md":           rule.SetPRD,
			"USER_GUIDE.md":    rule.SetUserGuide,
			"API_REFERENCE.md": rule.SetAPIReference,
		}
		for identity, wantSet := range bindings {
			set, ok := reg.Lookup(identity)
			if !ok {
				t.Errorf("Lookup(%q) not found", identity)
				continue
			}
			if set.Name() != wantSet {
				t.Errorf("Lookup(%q).Name() = %q, want %q", identity, set.Name(), wantSet)
			}
		}
	})

	t.Run("fallback carries the universal pair", func(t *testing.T) {
		t.Parallel()

		fallback := reg.Fallback()
		if fallback.Name() != rule.SetDefault {
			t.Errorf("Fallback().Name() = %q, want %q", fallback.Name(), rule.SetDefault)
		}

		codes := make([]string, 0, fallback.Len())
		for _, r := range fallback.Rules() {
			codes = append(codes, r.Code())
		}
		want := []string{"MD012", "MD047"}
		if len(codes) != len(want) {
			t.Fatalf("fallback rules = %v, want %v", codes, want)
		}
		for i := range want {
			if codes[i] != want[i] {
				t.Errorf("fallback rule %d = %q, want %q", i, codes[i], want[i])
			}
		}
	})

	t.Run("contributing set order", func(t *testing.T) {
		t.Parallel()

		set, _ := reg.Lookup("CONTRIBUTING.md")
		want := []string{"MD026", "MD013", "MD012", "MD040", "MD047", "MD030", "MD031"}
		got := set.Rules()
		if len(got) != len(want) {
			t.Fatalf("set has %d rules, want %d", len(got), len(want))
		}
		for i, r := range got {
			if r.Code() != want[i] {
				t.Errorf("rule %d = %q, want %q", i, r.Code(), want[i])
			}
		}
	})

	t.Run("faq set order", func(t *testing.T) {
		t.Parallel()

		set, _ := reg.Lookup("FAQ.md")
		want := []string{"MD036", "MD032", "MD040", "MD024", "MD012", "MD047", "MD051"}
		got := set.Rules()
		if len(got) != len(want) {
			t.Fatalf("set has %d rules, want %d", len(got), len(want))
		}
		for i, r := range got {
			if r.Code() != want[i] {
				t.Errorf("rule %d = %q, want %q", i, r.Code(), want[i])
			}
		}
	})
}

func TestCatalogue(t *testing.T) {
	t.Parallel()

	rules := rule.Catalogue(rule.Options{})
	if len(rules) != 12 {
		t.Fatalf("Catalogue() returned %d rules, want 12", len(rules))
	}

	seen := make(map[string]bool)
	for _, r := range rules {
		if r.Code() == "" {
			t.Error("rule with empty code")
		}
		if r.Description() == "" {
			t.Errorf("rule %s has empty description", r.Code())
		}
		if seen[r.Code()] {
			t.Errorf("duplicate rule code %s", r.Code())
		}
		seen[r.Code()] = true
	}
}
