package rule_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdfix/pkg/rule"
)

func TestRuleSetApply(t *testing.T) {
	t.Parallel()

	t.Run("rules fold left to right", func(t *testing.T) {
		t.Parallel()

		appendA := rule.New("T001", "append a", func(s string) string { return s + "a" })
		appendB := rule.New("T002", "append b", func(s string) string { return s + "b" })

		set := rule.NewRuleSet("test", appendA, appendB)
		if got := set.Apply("x"); got != "xab" {
			t.Errorf("Apply() = %q, want %q", got, "xab")
		}

		reversed := rule.NewRuleSet("test", appendB, appendA)
		if got := reversed.Apply("x"); got != "xba" {
			t.Errorf("Apply() = %q, want %q", got, "xba")
		}
	})

	t.Run("empty set returns content unchanged", func(t *testing.T) {
		t.Parallel()

		set := rule.NewRuleSet("empty")
		if got := set.Apply("anything"); got != "anything" {
			t.Errorf("Apply() = %q, want unchanged", got)
		}
	})

	t.Run("order changes the result for dependent rules", func(t *testing.T) {
		t.Parallel()

		collapse := rule.NewCollapseBlankLines()
		fences := rule.NewFenceSpacing()
		in := "a\n\n```bash\ncode\n\n```\n\nb\n"

		// Fence spacing creates a triple newline after the closing
		// fence; running the collapse afterwards normalizes it.
		first := rule.NewRuleSet("a", fences, collapse).Apply(in)
		if want := "a\n\n```bash\ncode\n\n```\n\nb\n"; first != want {
			t.Errorf("fences-then-collapse = %q, want %q", first, want)
		}

		// Collapse first sees nothing to do, so the excess survives.
		second := rule.NewRuleSet("b", collapse, fences).Apply(in)
		if want := "a\n\n```bash\ncode\n\n```\n\n\nb\n"; second != want {
			t.Errorf("collapse-then-fences = %q, want %q", second, want)
		}
	})
}

func TestRuleSetImmutability(t *testing.T) {
	t.Parallel()

	r1 := rule.New("T001", "noop", func(s string) string { return s })
	r2 := rule.New("T002", "upper", strings.ToUpper)

	rules := []rule.Rule{r1, r2}
	set := rule.NewRuleSet("test", rules...)

	rules[0] = r2
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if got := set.Rules()[0].Code(); got != "T001" {
		t.Errorf("mutating the source slice changed the set: first rule %q", got)
	}

	got := set.Rules()
	got[0] = r2
	if set.Rules()[0].Code() != "T001" {
		t.Error("mutating the returned slice changed the set")
	}
}

func TestNewSubstitution(t *testing.T) {
	t.Parallel()

	r := rule.NewSubstitution("T003", "swap", []rule.Substitution{
		{Old: "a", New: "b"},
		{Old: "bb", New: "c"},
	})

	// Pairs apply in order over the whole content, so the output of the
	// first pair feeds the second.
	if got := r.Apply("ab"); got != "c" {
		t.Errorf("Apply(%q) = %q, want %q", "ab", got, "c")
	}
}
