package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project paths, token names, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and success summaries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for skipped tokens and other soft warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed stages (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project paths, token names, URLs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleStage styles stage titles (cloning, rewriting, substituting).
	StyleStage = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleFailed styles fatal stage failures.
	StyleFailed = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatStageTitle renders a stage title line: a dim ordinal prefix and a
// bold title, e.g. "[2/6] Removing version control history".
func FormatStageTitle(index, total int, title string) string {
	prefix := StyleDim.Render(fmt.Sprintf("[%d/%d]", index, total))
	return prefix + " " + StyleStage.Render(title)
}
