package rule_test

import (
	"testing"

	"github.com/yaklabco/mdfix/pkg/rule"
)

func TestStripHeadingColons(t *testing.T) {
	t.Parallel()

	r := rule.NewStripHeadingColons()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "level-3 trailing colon removed",
			content: "### Foo:\n",
			want:    "### Foo\n",
		},
		{
			name:    "level-2 trailing colon removed",
			content: "## Setup:\n",
			want:    "## Setup\n",
		},
		{
			name:    "heading without colon untouched",
			content: "### Foo\n",
			want:    "### Foo\n",
		},
		{
			name:    "interior colon untouched",
			content: "### Foo: bar\n",
			want:    "### Foo: bar\n",
		},
		{
			name:    "level-1 heading untouched",
			content: "# Title:\n",
			want:    "# Title:\n",
		},
		{
			name:    "colon mid-document",
			content: "intro\n\n## Install:\n\nbody\n",
			want:    "intro\n\n## Install\n\nbody\n",
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

func TestNumberDuplicateHeadings(t *testing.T) {
	t.Parallel()

	r := rule.NewNumberDuplicateHeadings()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "first occurrence unchanged",
			content: "### Foo\n",
			want:    "### Foo\n",
		},
		{
			name:    "duplicates numbered in order",
			content: "### Foo\ntext\n### Foo\nmore\n### Foo\n",
			want:    "### Foo\ntext\n### Foo (2)\nmore\n### Foo (3)\n",
		},
		{
			name:    "colon-variant counts as same heading",
			content: "### Foo:\n### Foo\n",
			want:    "### Foo:\n### Foo (2)\n",
		},
		{
			name:    "distinct headings untouched",
			content: "### Foo\n### Bar\n",
			want:    "### Foo\n### Bar\n",
		},
		{
			name:    "level-2 headings ignored",
			content: "## Foo\n## Foo\n",
			want:    "## Foo\n## Foo\n",
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

func TestNumberDuplicateHeadingsConverges(t *testing.T) {
	t.Parallel()

	r := rule.NewNumberDuplicateHeadings()

	// Numbered headings normalize to distinct keys, so a second pass
	// leaves the first pass's output alone.
	in := "### Foo\n### Foo\n### Foo\n"
	once := r.Apply(in)
	twice := r.Apply(once)

	want := "### Foo\n### Foo (2)\n### Foo (3)\n"
	if once != want {
		t.Fatalf("first pass = %q, want %q", once, want)
	}
	if twice != once {
		t.Errorf("second pass changed output: %q", twice)
	}
}

func TestPromoteEmphasisHeadings(t *testing.T) {
	t.Parallel()

	r := rule.NewPromoteEmphasisHeadings()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bold-only line promoted and unwrapped",
			content: "**Important Note**\n",
			want:    "### Important Note\n",
		},
		{
			name:    "strong tag promoted and unwrapped",
			content: "<strong>Details</strong>\n",
			want:    "### Details\n",
		},
		{
			name:    "space-before-close keeps markers",
			content: "**Legacy Note **\n",
			want:    "### **Legacy Note **\n",
		},
		{
			name:    "bold inside sentence untouched",
			content: "This is **bold** text\n",
			want:    "This is **bold** text\n",
		},
		{
			name:    "double emphasis on one line untouched",
			content: "**a** and **b**\n",
			want:    "**a** and **b**\n",
		},
		{
			name:    "empty bold untouched",
			content: "****\n",
			want:    "****\n",
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
