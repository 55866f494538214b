package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

// getLogStyles returns charm's default styles with short level labels and
// a label for the trace level, which charm does not know about.
func getLogStyles() *charm.Styles {
	styles := charm.DefaultStyles()

	label := func(text, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(text).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}

	styles.Levels[TraceLevel] = label("TRCE", "#808080")
	styles.Levels[DebugLevel] = label("DEBU", "#87CEEB")
	styles.Levels[InfoLevel] = label("INFO", "#00AFFF")
	styles.Levels[WarnLevel] = label("WARN", "#FFAF00")
	styles.Levels[ErrorLevel] = label("ERRO", "#FF0000")
	styles.Levels[FatalLevel] = label("FATA", "#FF0000")

	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styles.Values["err"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFFF"))

	return styles
}
