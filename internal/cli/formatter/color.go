package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FrictionColor returns the lipgloss style for a friction level.
func FrictionColor(level domain.FrictionLevel) lipgloss.Style {
	switch level {
	case domain.FrictionHigh:
		return StyleRed
	case domain.FrictionMedium:
		return StyleYellow
	case domain.FrictionLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// FrictionBadge returns a colored friction indicator such as "● HIGH".
func FrictionBadge(level domain.FrictionLevel) string {
	switch level {
	case domain.FrictionHigh:
		return StyleRed.Render("● HIGH")
	case domain.FrictionMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.FrictionLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PhaseBadge returns a styled learning-phase label.
func PhaseBadge(phase domain.LearningPhase) string {
	switch phase {
	case domain.PhaseMastery:
		return StylePurple.Render("◆ MASTERY")
	case domain.PhaseEstablishment:
		return StyleBlue.Render("◆ ESTABLISHMENT")
	default:
		return StyleGreen.Render("◆ DISCOVERY")
	}
}

// SourceBadge marks where a plan task came from.
func SourceBadge(source domain.TaskSource) string {
	if source == domain.SourceLibrary {
		return StyleGreen.Render("[library]")
	}
	return StyleDim.Render("[original]")
}

// ZoneBadge returns a styled zone label for a time block.
func ZoneBadge(zone domain.ZoneType) string {
	switch zone {
	case domain.ZonePeak:
		return StyleRed.Render("peak")
	case domain.ZoneMaintenance:
		return StyleYellow.Render("maintenance")
	case domain.ZoneRecovery:
		return StyleBlue.Render("recovery")
	default:
		return StyleDim.Render(string(zone))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
