package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// WeekdayShort abbreviates a weekday name to three letters.
func WeekdayShort(name string) string {
	if len(name) > 3 {
		return name[:3]
	}
	return name
}

// DayLabel renders a YYYY-MM-DD date with "Today"/"Tomorrow" markers relative
// to the given reference date.
func DayLabel(date string, today string) string {
	switch {
	case date == today:
		return StyleBold.Render(date) + " " + StyleGreen.Render("(today)")
	case isTomorrow(date, today):
		return date + " " + Dim("(tomorrow)")
	default:
		return date
	}
}

func isTomorrow(date, today string) bool {
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return false
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02") == date
}

// JoinNotes renders session notes as one dimmed line, or "--" when empty.
func JoinNotes(notes []string) string {
	if len(notes) == 0 {
		return Dim("--")
	}
	return Dim(strings.Join(notes, "; "))
}
