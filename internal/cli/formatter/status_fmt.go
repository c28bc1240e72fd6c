package formatter

import (
	"fmt"
	"strings"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
)

// FormatStatus formats a StatusResponse into a styled CLI dashboard string.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Today: %s\n", Bold(resp.Today)))
	b.WriteString("Load:  " + LoadRatioLine(resp.LoadRatio, resp.Risk) + "\n")
	b.WriteString("       " + Dim(fmt.Sprintf("%d workouts in the trailing 7 days", resp.RecentWorkouts)) + "\n")

	if resp.Readiness != nil {
		b.WriteString(fmt.Sprintf("Readiness: %s\n", readinessBadge(resp.Readiness)))
	} else {
		b.WriteString("Readiness: " + Dim("no score for today") + "\n")
	}

	if resp.Absence != nil {
		until := domain.FormatDate(resp.Absence.Until)
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Away: %s through %s", resp.Absence.Kind, until)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Upcoming: %d planned session(s)\n", resp.UpcomingCount))
	if len(resp.NextSessions) > 0 {
		b.WriteString(RenderTable(sessionHeaders, sessionRows(resp.Today, resp.NextSessions)))
	}

	if len(resp.AuditTail) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent adaptations") + "\n")
		for _, e := range resp.AuditTail {
			b.WriteString(fmt.Sprintf("  %s  %s  %s → %s  %s\n",
				Dim(e.Timestamp.Format("2006-01-02 15:04")),
				e.SessionDate,
				string(e.From), SessionStatusPill(e.To),
				Dim(e.Rule)))
		}
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox("Status", b.String())
}

func readinessBadge(r *domain.ReadinessScore) string {
	label := fmt.Sprintf("%d/100", r.Score)
	switch {
	case r.Quality == domain.ReadinessInsufficient:
		return StyleDim.Render(label + " (insufficient signal)")
	case r.Score < 50:
		return StyleRed.Render(label)
	case r.Score < 70:
		return StyleYellow.Render(label)
	default:
		return StyleGreen.Render(label)
	}
}
