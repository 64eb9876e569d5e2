package errors

import (
	"fmt"
	"slices"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes of the emucfg binary.
const (
	ExitSuccess = 0
	// ExitUser is bad input: an unknown section or device, a refused
	// operation, doctor warnings.
	ExitUser = 1
	// ExitSystem is a failure of the environment: I/O, permissions, a
	// section that failed to apply under --strict, doctor errors.
	ExitSystem = 2
)

var (
	// ErrInvalidConfig marks content that could not be decoded or validated.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrSaveDisabled marks an operation refused because this process
	// never writes the settings file (--no-save-settings or design mode).
	ErrSaveDisabled = crdb.New("saving settings is disabled")

	// ErrUnknownSection marks a section key the aggregate does not own.
	ErrUnknownSection = crdb.New("unknown configuration section")

	// ErrUnknownDevice marks a device name the engine did not report.
	ErrUnknownDevice = crdb.New("unknown device")
)

// Re-exports so callers import one errors package.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	Is          = crdb.Is
	As          = crdb.As
	Join        = crdb.Join
	WithHint    = crdb.WithHint
	GetAllHints = crdb.GetAllHints
)

// ExitError carries the process exit code for a failed command, plus one
// suggestion printed under the error message.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError wraps err with an exit code and no suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError wraps err with ExitUser.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError wraps err with ExitSystem.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to the process exit code. Errors that carry no
// ExitError are treated as user errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}

// Hints collects what to tell the user next: the outermost ExitError's
// suggestion, then any hints attached deeper in the chain with WithHint.
// Duplicates and empty strings are dropped.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	var out []string
	add := func(h string) {
		if h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		add(exitErr.Suggestion)
	}
	for _, h := range GetAllHints(err) {
		add(h)
	}
	return out
}
