package fixer

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the parser used to sanity-check transformed output. GFM
// matches the documents this tool maintains (tables, task lists).
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ValidateMarkdown confirms the content still parses and renders as
// Markdown after the rule set ran. The rules themselves never see a
// syntax tree; this is a post-transform guard only.
func ValidateMarkdown(content []byte) error {
	if err := md.Convert(content, io.Discard); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return nil
}
