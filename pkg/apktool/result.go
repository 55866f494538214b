package apktool

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// Result is the outcome of one apktool invocation.
type Result struct {
	// Args is the full argument vector after the runtime name.
	Args     []string
	ExitCode int
	// Stdout is set when output was captured.
	Stdout string
	// Stderr holds whatever the process wrote to stderr.
	Stderr string
}

// Success reports whether the process exited with status zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// ProcessError is returned when apktool exits with a nonzero status.
// It matches errUtils.ErrProcessFailure with errors.Is.
type ProcessError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("apktool exited with status %d", e.Code)
	if line := lastLine(e.Stderr); line != "" {
		msg += ": " + line
	}
	return msg
}

// ExitCode returns the process exit status.
func (e *ProcessError) ExitCode() int {
	return e.Code
}

func (e *ProcessError) Is(target error) bool {
	return target == errUtils.ErrProcessFailure
}

// newProcessError builds the error returned for a nonzero exit.
func newProcessError(args []string, code int, stderr string) error {
	return errUtils.Build(&ProcessError{Args: args, Code: code, Stderr: stderr}).
		WithSentinel(errUtils.ErrProcessFailure).
		WithContext("exit_code", code).
		WithExitCode(code).
		Err()
}

// AsProcessError extracts the ProcessError from an error chain.
func AsProcessError(err error) (*ProcessError, bool) {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
