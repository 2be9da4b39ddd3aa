// Package config defines the configuration types for mdfix.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

import "github.com/yaklabco/mdfix/pkg/rule"

// BackupsConfig controls sidecar backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for mdfix.
type Config struct {
	// DocsDir is the directory holding the known documents, used by
	// the all-documents expansion.
	DocsDir string `yaml:"docs_dir"`

	// MaxLineLength bounds the line-wrap rule. Zero uses the built-in
	// default.
	MaxLineLength int `yaml:"max_line_length"`

	// DefaultLanguage is the tag for bare code fences.
	DefaultLanguage string `yaml:"default_language"`

	// DetectLanguage enables content-based fence language detection,
	// with DefaultLanguage as the fallback.
	DetectLanguage bool `yaml:"detect_language"`

	// ValidateOutput re-parses fixed content as Markdown before
	// writing it.
	ValidateOutput bool `yaml:"validate_output"`

	// Jobs is the number of parallel workers (0 = one per CPU).
	Jobs int `yaml:"jobs"`

	// Backups configures sidecar backups.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Check reports would-be changes without writing.
	Check bool `yaml:"-"`

	// All expands the working set to every known document.
	All bool `yaml:"-"`

	// RuleSet forces one named rule set across the batch.
	RuleSet string `yaml:"-"`

	// NoBackups disables backups regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		DocsDir:         "docs",
		MaxLineLength:   rule.DefaultMaxLineLength,
		DefaultLanguage: "bash",
		DetectLanguage:  false,
		ValidateOutput:  false,
		Jobs:            0,
		Backups:         BackupsConfig{Enabled: true},
	}
}

// BackupsEnabled resolves the effective backup switch.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups
}
