// Package langdetect chooses fence language tags for code snippets.
// It combines a few cheap structural checks with go-enry's classifier
// and normalizes the answer to the lowercase tags used in fences.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates narrows the classifier to languages that actually appear
// in the maintained documents.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Rust", "SQL", "JSON", "YAML", "HTML", "Dockerfile",
}

// Detect returns a fence tag for the snippet, or "" when no confident
// answer exists so the caller can fall back to its default.
func Detect(snippet string) string {
	trimmed := strings.TrimSpace(snippet)
	if trimmed == "" {
		return ""
	}

	content := []byte(snippet)

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}
	if lang := detectByShape(trimmed); lang != "" {
		return lang
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return ""
}

// detectByShape handles snippets whose opening tokens identify the
// language more reliably than a classifier would.
func detectByShape(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "package "):
		return "go"
	case strings.HasPrefix(trimmed, "#!"):
		return "bash"
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		return "json"
	case strings.HasPrefix(trimmed, "FROM ") && strings.Contains(trimmed, "\nRUN "):
		return "dockerfile"
	case strings.HasPrefix(trimmed, "fn ") || strings.Contains(trimmed, "fn main()"):
		return "rust"
	case strings.Contains(trimmed, "def ") && strings.Contains(trimmed, "):"):
		return "python"
	}
	return ""
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "Dockerfile":
		return "dockerfile"
	default:
		return strings.ToLower(lang)
	}
}
