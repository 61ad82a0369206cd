package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/domain"
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
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageColor returns the style used for a literacy stage.
func StageColor(stage domain.LiteracyStage) lipgloss.Style {
	switch stage {
	case domain.StageEmergent:
		return StylePurple
	case domain.StageEarly:
		return StyleBlue
	case domain.StageDeveloping:
		return StyleGreen
	case domain.StageTransitional:
		return StyleYellow
	case domain.StageFluent:
		return StyleHeader
	default:
		return StyleDim
	}
}

// StageBadge renders a stage name in its color, e.g. "● EARLY".
func StageBadge(stage domain.LiteracyStage) string {
	return StageColor(stage).Render("● " + strings.ToUpper(string(stage)))
}

// OutcomePill renders the result of moving past a question.
func OutcomePill(outcome domain.LevelOutcome) string {
	switch outcome {
	case domain.OutcomePassed:
		return StyleGreen.Render("✔ PASSED")
	case domain.OutcomeRetry:
		return StyleRed.Render("↺ RETRY")
	case domain.OutcomeAdvanced:
		return StyleBlue.Render("▶ NEXT")
	default:
		return StyleDim.Render(string(outcome))
	}
}

// Mark renders a correct/incorrect marker.
func Mark(correct bool) string {
	if correct {
		return StyleGreen.Render("✔")
	}
	return StyleRed.Render("✘")
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
