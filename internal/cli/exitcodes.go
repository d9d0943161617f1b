package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/rpn35/pkg/nav"
)

// Exit codes for rpn35.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitOperationFailed indicates a document operation failed (label
	// invariant, unresolvable address, and so on).
	ExitOperationFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode classifies an error from command execution.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, nav.ErrInvalidLineSpec):
		return ExitInvalidUsage
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitOperationFailed
	}
}
