package formatter

import (
	"fmt"
	"strings"

	"github.com/pacerapp/pacer/internal/app"
	"github.com/pacerapp/pacer/internal/domain"
)

// FormatPlan formats a planning run into a styled CLI report.
func FormatPlan(resp *app.PlanResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Window: %s .. %s\n", resp.WindowStart, resp.WindowEnd))
	b.WriteString("Load:   " + LoadRatioLine(resp.LoadRatio, resp.Risk) + "\n")
	if resp.Deload {
		b.WriteString(StyleYellow.Render("Deload week: volumes reduced") + "\n")
	}
	b.WriteString("\n")

	if len(resp.Sessions) == 0 {
		b.WriteString(Dim("No sessions placed.") + "\n")
	} else {
		b.WriteString(RenderTable(sessionHeaders, sessionRows(resp.Today, resp.Sessions)))
	}

	if len(resp.Demoted) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Demoted for recovery spacing: %s", strings.Join(resp.Demoted, ", "))) + "\n")
	}
	if len(resp.Dropped) > 0 {
		b.WriteString(Dim(fmt.Sprintf("Dropped by hard-session budget: %s", strings.Join(resp.Dropped, ", "))) + "\n")
	}

	if len(resp.Flags) > 0 {
		b.WriteString("\n")
		for _, f := range resp.Flags {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %s", f.Code, f.Message)) + "\n")
		}
	}

	return RenderBox("Plan", b.String())
}

var sessionHeaders = []string{"DATE", "DAY", "SESSION", "DURATION", "INTENSITY", "NOTES"}

func sessionRows(today string, sessions []app.SessionView) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			DayLabel(s.Date, today),
			WeekdayShort(s.Weekday),
			Bold(s.Title),
			FormatMinutes(s.DurationMin),
			HardnessDot(s.Hardness),
			JoinNotes(s.Notes),
		})
	}
	return rows
}

// LoadRatioLine renders the acute:chronic report inline, or a placeholder when
// history was insufficient.
func LoadRatioLine(lr *domain.LoadRatio, risk domain.RiskTier) string {
	if lr == nil {
		return RiskIndicator(risk) + " " + Dim("(insufficient history)")
	}
	return fmt.Sprintf("%s  acute %s, chronic avg %s/wk, ratio %.2f",
		RiskIndicator(lr.Tier),
		FormatMinutes(lr.AcuteMin),
		FormatMinutes(int(lr.ChronicWeeklyAvgMin)),
		lr.Ratio)
}
