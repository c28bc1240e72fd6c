package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pacerapp/pacer/internal/domain"
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

// RiskIndicator returns a colored load-ratio tier string such as "● HIGH".
func RiskIndicator(tier domain.RiskTier) string {
	switch tier {
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskElevated:
		return StyleYellow.Render("● ELEVATED")
	case domain.RiskSafe:
		return StyleGreen.Render("● SAFE")
	case domain.RiskDetraining:
		return StyleBlue.Render("● DETRAINING")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// HardnessDot returns a colored stress tier marker for a planned session.
func HardnessDot(tier domain.StressTier) string {
	switch tier {
	case domain.StressVeryHard:
		return StyleRed.Render("●● very hard")
	case domain.StressHard:
		return StyleYellow.Render("● hard")
	default:
		return StyleGreen.Render("○ normal")
	}
}

// SessionStatusPill returns a colored status indicator for a session.
func SessionStatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.StatusPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.StatusMissed:
		return StyleRed.Render("✖ Missed")
	case domain.StatusSkipped:
		return StyleDim.Render("⊘ Skipped")
	default:
		return StyleDim.Render(string(status))
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
