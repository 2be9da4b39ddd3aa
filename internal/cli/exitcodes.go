package cli

import (
	"errors"

	"github.com/yaklabco/mdfix/pkg/runner"
)

// Exit codes for mdfix, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, runner.ErrNoTargets):
		return ExitInvalidUsage
	default:
		return ExitFailure
	}
}
