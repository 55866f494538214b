package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormat_Nil(t *testing.T) {
	assert.Empty(t, Format(nil, DefaultFormatterConfig()))
}

func TestFormat_MessageAndHints(t *testing.T) {
	err := Build(ErrToolNotFound).
		WithHint("Set tool_path in apkwrap.yaml").
		Err()

	out := Format(err, FormatterConfig{Color: "never", MaxLineLength: 80})

	assert.True(t, strings.HasPrefix(out, "apktool artifact not found"))
	assert.Contains(t, out, "hint: Set tool_path in apkwrap.yaml")
}

func TestFormat_VerboseIncludesContext(t *testing.T) {
	err := Build(ErrProcessFailure).
		WithContext("exit_code", 2).
		Err()

	quiet := Format(err, FormatterConfig{Color: "never", MaxLineLength: 80})
	assert.NotContains(t, quiet, "exit_code")

	verbose := Format(err, FormatterConfig{Color: "never", Verbose: true, MaxLineLength: 80})
	assert.Contains(t, verbose, "exit_code: 2")
}

func TestFormat_WrapsLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))
	out := Format(err, FormatterConfig{Color: "never", MaxLineLength: 20})

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "aaa bbb\nccc", wrapText("aaa bbb ccc", 7))
	assert.Equal(t, "single", wrapText("single", 0))
}

func TestFormatContext_ValuesWithSpaces(t *testing.T) {
	err := Build(ErrToolNotFound).
		WithContext("override", "/x").
		WithContext("bundled", "/home/my user/Library/Application Support/apktool.jar").
		Err()

	assert.Equal(t,
		"  bundled: /home/my user/Library/Application Support/apktool.jar\n  override: /x\n",
		formatContext(err))

	verbose := Format(err, FormatterConfig{Color: "never", Verbose: true, MaxLineLength: 80})
	assert.Contains(t, verbose, "bundled: /home/my user/Library/Application Support/apktool.jar")
	assert.Contains(t, verbose, "override: /x")
}

func TestFormatContext_ValueWithEquals(t *testing.T) {
	err := Build(ErrInvalidConfig).WithContext("file", "/tmp/a=b c.yaml").Err()

	assert.Equal(t, "  file: /tmp/a=b c.yaml\n", formatContext(err))
}

func TestFormatContext_SurvivesWrapping(t *testing.T) {
	inner := Build(ErrProcessStart).WithContext("runtime", "/opt/my jdk/bin/java").Err()
	err := errors.Wrap(inner, "decode app.apk")

	assert.Contains(t, formatContext(err), "  runtime: /opt/my jdk/bin/java")
}

func TestContextLines(t *testing.T) {
	tests := []struct {
		detail   string
		expected []string
	}{
		{"a=1", []string{"  a: 1"}},
		{"path=/with space/x", []string{"  path: /with space/x"}},
		{"exit_code=", []string{"  exit_code: "}},
		{"goroutine 1 [running]:", nil},
		{"\ngithub.com/x.f\n\t/src/x.go:12 a=b", nil},
		{"not a key=value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.detail, func(t *testing.T) {
			assert.Equal(t, tt.expected, contextLines(tt.detail))
		})
	}
}
