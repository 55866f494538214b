package errors

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline = "\n"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds the context details and the full error chain.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display: the message, its hints and, in
// verbose mode, the structured context and the error chain.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	detailStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF0000"))
		hintStyle = hintStyle.Foreground(lipgloss.Color("#87CEEB"))
		detailStyle = detailStyle.Foreground(lipgloss.Color("#808080"))
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString("    " + hintStyle.Render("hint: "+hint))
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		if ctx := formatContext(err); ctx != "" {
			output.WriteString(newline)
			output.WriteString(detailStyle.Render(ctx))
		}
		output.WriteString(newline)
		output.WriteString(detailStyle.Render(fmt.Sprintf("%+v", err)))
	}

	return output.String()
}

// formatContext renders the key=value pairs attached with WithContext, one per line.
func formatContext(err error) string {
	var lines []string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			lines = append(lines, contextLines(detail)...)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, newline) + newline
}

// contextKey matches the key of a detail recorded by WithContext.
var contextKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// contextLines renders one "key=value" detail. The value is everything after
// the first '=' and may contain spaces. Details of any other shape (stack
// traces, type names) are not context and yield nothing.
func contextLines(detail string) []string {
	if strings.Contains(detail, newline) {
		return nil
	}
	key, value, ok := strings.Cut(detail, "=")
	if !ok || !contextKey.MatchString(key) {
		return nil
	}
	return []string{fmt.Sprintf("  %s: %s", key, value)}
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() > 0 && currentLine.Len()+1+len(word) > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}
