package runner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdfix/pkg/rule"
	"github.com/yaklabco/mdfix/pkg/runner"
)

func newTestRegistry() *rule.Registry {
	reg := rule.NewRegistry(rule.NewRuleSet("default", rule.NewFinalNewline()))
	reg.Bind("FAQ.md", rule.NewRuleSet("faq", rule.NewCollapseBlankLines(), rule.NewFinalNewline()))
	reg.Bind("prd.md", rule.NewRuleSet("prd", rule.NewFinalNewline()))
	return reg
}

func TestResolveTargets(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	t.Run("explicit files pass through", func(t *testing.T) {
		t.Parallel()

		files := []string{"a.md", "docs/b.md"}
		got, err := runner.ResolveTargets(runner.Options{Files: files}, reg)
		if err != nil {
			t.Fatalf("ResolveTargets() error = %v", err)
		}
		if len(got) != 2 || got[0] != "a.md" || got[1] != "docs/b.md" {
			t.Errorf("targets = %v, want %v", got, files)
		}
	})

	t.Run("all expands to existing known documents", func(t *testing.T) {
		t.Parallel()

		docsDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(docsDir, "FAQ.md"), []byte("x\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		// prd.md intentionally absent.

		got, err := runner.ResolveTargets(runner.Options{All: true, DocsDir: docsDir}, reg)
		if err != nil {
			t.Fatalf("ResolveTargets() error = %v", err)
		}
		if len(got) != 1 || got[0] != filepath.Join(docsDir, "FAQ.md") {
			t.Errorf("targets = %v, want only the existing FAQ.md", got)
		}
	})

	t.Run("all takes precedence over files", func(t *testing.T) {
		t.Parallel()

		docsDir := t.TempDir()
		opts := runner.Options{All: true, DocsDir: docsDir, Files: []string{"explicit.md"}}

		got, err := runner.ResolveTargets(opts, reg)
		if err != nil {
			t.Fatalf("ResolveTargets() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("targets = %v, want empty for an empty docs dir", got)
		}
	})

	t.Run("no files and no all is a usage error", func(t *testing.T) {
		t.Parallel()

		_, err := runner.ResolveTargets(runner.Options{}, reg)
		if !errors.Is(err, runner.ErrNoTargets) {
			t.Errorf("error = %v, want ErrNoTargets", err)
		}
	})
}
