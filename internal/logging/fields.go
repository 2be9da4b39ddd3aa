package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldFiles      = "files"
	FieldDocsDir    = "docs_dir"
	FieldWorkingDir = "working_dir"

	// Run option fields.
	FieldRuleSet = "rule_set"
	FieldCheck   = "check"
	FieldJobs    = "jobs"
	FieldAll     = "all"

	// Statistics fields.
	FieldFilesTargeted  = "files_targeted"
	FieldFilesFixed     = "files_fixed"
	FieldFilesUnchanged = "files_unchanged"
	FieldFilesMissing   = "files_missing"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldCode        = "code"
	FieldDescription = "description"
)
