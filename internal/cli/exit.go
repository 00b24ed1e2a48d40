package cli

import (
	"errors"

	"github.com/vk/packer/internal/packerr"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitSystem         = 1
	ExitUsage          = 2
	ExitIncorrectInput = 3
	ExitValidation     = 4
	ExitFileNotFound   = 5
)

var exitCodes = map[error]int{
	packerr.ErrIncorrectInput: ExitIncorrectInput,
	packerr.ErrValidation:     ExitValidation,
	packerr.ErrFileNotFound:   ExitFileNotFound,
	packerr.ErrSystem:         ExitSystem,
}

// ExitCode maps an error returned by the application to a process exit code.
// Errors without a kind are system failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if code, ok := exitCodes[packerr.KindOf(err)]; ok {
		return code
	}
	return ExitSystem
}
