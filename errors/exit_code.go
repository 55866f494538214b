package errors

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

// ExitCoder is an error that knows the exit status apkwrap should end with.
// apktool.ProcessError implements it with apktool's own status.
type ExitCoder interface {
	ExitCode() int
}

// codedError pins an exit code on top of an error chain.
type codedError struct {
	cause error
	code  int
}

func (e *codedError) Error() string { return e.cause.Error() }

func (e *codedError) Cause() error { return e.cause }

func (e *codedError) Unwrap() error { return e.cause }

func (e *codedError) ExitCode() int { return e.code }

// WithExitCode returns err carrying code. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{cause: err, code: code}
}

// GetExitCode picks the exit status for err: 0 for nil, a code pinned with
// WithExitCode, then a positive code from any ExitCoder or exec.ExitError in
// the chain, otherwise 1.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var pinned *codedError
	if errors.As(err, &pinned) {
		return pinned.code
	}

	var coder ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() > 0 {
		return coder.ExitCode()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}
