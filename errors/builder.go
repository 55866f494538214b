package errors

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder enriches an error before it reaches the user. Start with
// Build, chain the With* calls, finish with Err.
//
//	return errUtils.Build(errUtils.ErrToolNotFound).
//		WithContext("bundled", path).
//		WithHint("Set tool_path in apkwrap.yaml").
//		Err()
type ErrorBuilder struct {
	err       error
	hints     []string
	context   map[string]interface{}
	exitCode  *int
	sentinels []error
}

// Build starts a builder around err. When err wraps nothing it is one of the
// sentinels in this package, and Err keeps it matchable with errors.Is.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinels = append(b.sentinels, err)
	}
	return b
}

// WithCause puts cause underneath the error being built, so the message reads
// "<error>: <cause>" and both match errors.Is.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	if cause == nil || b.err == nil {
		return b
	}
	b.err = errors.Wrapf(cause, "%s", b.err.Error())
	return b
}

// WithHint adds a line the formatter prints under the message.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithHint(fmt.Sprintf(format, args...))
}

// WithExplanation attaches a longer description as an error detail.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

func (b *ErrorBuilder) WithExplanationf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithExplanation(fmt.Sprintf(format, args...))
}

// WithContext records key=value for verbose output. Setting a key twice keeps the last value.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]interface{})
	}
	b.context[key] = value
	return b
}

// WithExitCode sets the process exit code main uses for this error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel makes the result match sentinel with errors.Is.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err returns the enriched error, or nil when the builder started from nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err
	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	// One safe-detail payload per pair so values may hold any text. Details are
	// read outermost first, so keys are wrapped in reverse order.
	keys := make([]string, 0, len(b.context))
	for k := range b.context {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for _, key := range keys {
		err = errors.WithSafeDetails(err, "%s=%v", errors.Safe(key), errors.Safe(b.context[key]))
	}

	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}
