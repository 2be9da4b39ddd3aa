package rule_test

import (
	"testing"

	"github.com/yaklabco/mdfix/pkg/rule"
)

func TestFenceSpacing(t *testing.T) {
	t.Parallel()

	r := rule.NewFenceSpacing()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "blank line inserted before fence after text",
			content: "text\n```bash\n",
			want:    "text\n\n```bash\n",
		},
		{
			name:    "fence preceded by blank line untouched",
			content: "text\n\n```bash\n",
			want:    "text\n\n```bash\n",
		},
		{
			name:    "closing fence separated on both sides",
			content: "```bash\ncode\n```\nafter\n",
			want:    "```bash\ncode\n\n```\n\nafter\n",
		},
		{
			name:    "blank after bare fence line inserted unconditionally",
			content: "a\n\n```bash\ncode\n\n```\n\nb\n",
			want:    "a\n\n```bash\ncode\n\n```\n\n\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.Apply(tt.content); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestFenceLanguage(t *testing.T) {
	t.Parallel()

	t.Run("bare fence gets default language", func(t *testing.T) {
		t.Parallel()

		r := rule.NewFenceLanguage("bash", nil)
		got := r.Apply("text\n```\ncode\n```")
		want := "text\n```bash\ncode\n```"
		if got != want {
			t.Errorf("Apply() = %q, want %q", got, want)
		}
	})

	t.Run("empty default falls back to bash", func(t *testing.T) {
		t.Parallel()

		r := rule.NewFenceLanguage("", nil)
		got := r.Apply("text\n```\ncode\n```")
		want := "text\n```bash\ncode\n```"
		if got != want {
			t.Errorf("Apply() = %q, want %q", got, want)
		}
	})

	t.Run("every untagged fence line is tagged", func(t *testing.T) {
		t.Parallel()

		r := rule.NewFenceLanguage("bash", nil)
		got := r.Apply("text\n```\ncode\n```\n")
		want := "text\n```bash\ncode\n```bash\n"
		if got != want {
			t.Errorf("Apply() = %q, want %q", got, want)
		}
	})

	t.Run("tagged fence untouched", func(t *testing.T) {
		t.Parallel()

		r := rule.NewFenceLanguage("bash", nil)
		in := "text\n```python\ncode\n```"
		if got := r.Apply(in); got != in {
			t.Errorf("Apply() = %q, want unchanged", got)
		}
	})

	t.Run("detector tags from block body", func(t *testing.T) {
		t.Parallel()

		detect := func(body string) string {
			if body == "import os\n" {
				return "python"
			}
			return ""
		}
		r := rule.NewFenceLanguage("bash", detect)

		got := r.Apply("a\n```\nimport os\n```")
		want := "a\n```python\nimport os\n```"
		if got != want {
			t.Errorf("Apply() = %q, want %q", got, want)
		}

		got = r.Apply("b\n```\nmystery\n```")
		want = "b\n```bash\nmystery\n```"
		if got != want {
			t.Errorf("Apply() = %q, want %q", got, want)
		}
	})
}
