package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: parameter names, file paths, groups.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for applied updates and added parameters.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for modified parameters.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for removed parameters and rejected updates.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for failures (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// colorBlue is used for table headers.
	colorBlue = lipgloss.Color("12")
)

// Semantic styles: map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (parameter names, file paths, groups).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (patching, watching).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Update status constants.
const (
	StatusApplied   = "applied"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	statusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given update status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusApplied:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNameColumnWidth is the minimum width for the parameter column before the
// status suffix, so status words align.
const minNameColumnWidth = 32

// FormatUpdateLine renders one parameter update with a right-aligned,
// color-coded status suffix.
//
// Format: p:<name> = <value>  <status>
func FormatUpdateLine(name, value, status string) string {
	text := name
	if value != "" {
		text = fmt.Sprintf("%s = %s", name, value)
	}

	padding := minNameColumnWidth - len(text)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("p:") + StyleNoun.Render(text) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// Styles groups the styles used by the diff renderers.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Noun    lipgloss.Style
	Dim     lipgloss.Style
}

// GetStyles returns the colored styles.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Noun:    StyleNoun,
		Dim:     StyleDim,
	}
}

// NoColorStyles returns styles that render text unchanged.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Success: plain,
		Warning: plain,
		Error:   plain,
		Noun:    plain,
		Dim:     plain,
	}
}

// StylesFor returns colored styles when color is true.
func StylesFor(color bool) *Styles {
	if color {
		return GetStyles()
	}
	return NoColorStyles()
}
