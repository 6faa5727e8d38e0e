// Package ui holds terminal styles for human-facing CLI messages.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackzampolin/vista/internal/ocrprompt"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#00D787") // Green
	ColorError   = lipgloss.Color("#FF5F87") // Pink
	ColorWarning = lipgloss.Color("#FFAF00") // Yellow
	ColorMuted   = lipgloss.Color("#888888") // Mid gray
)

// Text styles
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// PrintWarnings writes one styled line per lint warning.
func PrintWarnings(w io.Writer, warnings []ocrprompt.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s %s %s\n",
			StyleWarning.Render("warning"),
			StyleMuted.Render("["+warn.Code+"]"),
			warn.Message,
		)
	}
}

// PrintError writes a styled error line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", StyleError.Render("error"), err)
}

// PrintOK writes a styled success line.
func PrintOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", StyleSuccess.Render("ok"), msg)
}
