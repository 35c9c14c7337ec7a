// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and descriptions.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for created files and clean checks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for things left untouched.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for selector names and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray - used for verbose output.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

// styles are bound to one writer's renderer, so output that is not a
// terminal is written without escape sequences.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Cmd      lipgloss.Style
	Verbose  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subtitle: r.NewStyle().Foreground(ColorMuted),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Error:    r.NewStyle().Bold(true).Foreground(ColorError),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Cmd:      r.NewStyle().Foreground(ColorHighlight),
		Verbose:  r.NewStyle().Foreground(ColorVerbose),
	}
}

// Styles for the static help text, rendered through the default renderer.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	subtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
