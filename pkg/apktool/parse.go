package apktool

import (
	"strings"

	"github.com/samber/lo"
)

// frameworkPrefixLen is the width of the "N: " prefix apktool prints before each framework.
const frameworkPrefixLen = 3

// ParseVersionOutput trims the newlines around apktool's --version output.
func ParseVersionOutput(stdout string) string {
	return strings.Trim(stdout, "\r\n")
}

// ParseFrameworkList extracts file names from `apktool list-frameworks` output.
// Each line starts with a fixed-width prefix that is dropped; order is preserved.
// Lines with nothing after the prefix are skipped rather than returned as
// empty names, so the result only holds real file names.
func ParseFrameworkList(stdout string) []string {
	lines := strings.Split(strings.ReplaceAll(stdout, "\r\n", "\n"), "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		runes := []rune(line)
		if len(runes) <= frameworkPrefixLen {
			return "", false
		}
		return string(runes[frameworkPrefixLen:]), true
	})
}
