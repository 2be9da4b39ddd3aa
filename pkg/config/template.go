package config

// Template is the commented starter configuration written by
// `mdfix init`.
const Template = `# mdfix configuration
#
# Documents are matched by base name against the built-in registry;
# anything unrecognized gets only the universal rules (blank-line
# collapsing and trailing-newline normalization).

# Directory searched by --all for the known documents.
docs_dir: docs

# Maximum line length for the line-wrap rule.
max_line_length: 120

# Language tag applied to bare code fences.
default_language: bash

# Detect fence languages from content, falling back to
# default_language. Off by default to keep fixes reproducible.
detect_language: false

# Re-parse fixed content as Markdown before writing.
validate_output: false

# Parallel workers (0 = one per CPU).
jobs: 0

backups:
  # Keep a one-time sidecar .mdfix.bak next to each modified file.
  enabled: true
`
