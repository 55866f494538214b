package apktool

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// ExecRunner runs commands with os/exec. Arguments are passed as a vector and
// never interpreted by a shell.
type ExecRunner struct{}

// NewExecRunner returns the default Runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOptions) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	if opts.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = writerOr(opts.Stdout, os.Stdout)
		// Stderr is teed so failures still carry diagnostics.
		cmd.Stderr = io.MultiWriter(writerOr(opts.Stderr, os.Stderr), &stderr)
	}

	runErr := cmd.Run()

	result := &Result{
		Args:   args,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if runErr == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, errors.Wrapf(ctxErr, "apktool %s interrupted", firstToken(args))
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		return result, errUtils.Build(errUtils.ErrProcessStart).
			WithCause(runErr).
			WithContext("runtime", name).
			WithHint("Make sure a Java runtime is installed and set `java` in apkwrap.yaml or --java").
			Err()
	}

	result.ExitCode = exitErr.ExitCode()
	if opts.AllowFailure {
		return result, nil
	}
	return result, newProcessError(args, result.ExitCode, result.Stderr)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

// firstToken returns the first apktool token after "-jar <path>", used in messages.
func firstToken(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "-jar" {
			i++
			continue
		}
		return args[i]
	}
	return ""
}
