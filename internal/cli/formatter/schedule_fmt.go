package formatter

import (
	"fmt"
	"strings"

	"github.com/pacerapp/pacer/internal/app"
)

// FormatSchedule formats the stored schedule window as a table.
func FormatSchedule(resp *app.ScheduleResponse, today string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s .. %s\n\n", resp.From, resp.To))

	if len(resp.Sessions) == 0 {
		b.WriteString(Dim("No sessions in this range.") + "\n")
		return RenderBox("Schedule", b.String())
	}

	headers := []string{"DATE", "DAY", "SESSION", "DURATION", "STATUS", "NOTES"}
	rows := make([][]string, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		rows = append(rows, []string{
			DayLabel(s.Date, today),
			WeekdayShort(s.Weekday),
			Bold(s.Title),
			FormatMinutes(s.DurationMin),
			SessionStatusPill(s.Status),
			JoinNotes(s.Notes),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Schedule", b.String())
}
