package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmalmgren/tempus/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style corresponding to a task status.
func StatusStyle(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.TaskCompleted:
		return StyleGreen
	case domain.TaskOngoing:
		return StyleBlue
	case domain.TaskNotStarted:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusPill renders a task status as a colored label such as "● ongoing".
func StatusPill(status domain.TaskStatus) string {
	return StatusStyle(status).Render("● " + status.Label())
}

// FeasibilityMarker renders a colored on-track/overdue-risk indicator.
func FeasibilityMarker(feasible bool) string {
	if feasible {
		return StyleGreen.Render("✓ fits")
	}
	return StyleRed.Render("✗ tight")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
