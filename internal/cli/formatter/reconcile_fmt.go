package formatter

import (
	"fmt"
	"strings"

	"github.com/pacerapp/pacer/internal/app"
)

// FormatReconcile formats the reconciliation transitions and carryover summary.
func FormatReconcile(resp *app.ReconcileResponse) string {
	var b strings.Builder

	if len(resp.Transitions) == 0 {
		b.WriteString(Dim("Nothing to reconcile.") + "\n")
	} else {
		headers := []string{"DATE", "SESSION", "FROM", "TO", "RULE"}
		rows := make([][]string, 0, len(resp.Transitions))
		for _, tr := range resp.Transitions {
			rows = append(rows, []string{
				tr.Date,
				Bold(tr.Title),
				string(tr.From),
				SessionStatusPill(tr.To),
				Dim(tr.Rule),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if resp.CarryoverEndurance > 0 || resp.CarryoverStrength > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"Carryover: %d endurance, %d strength session(s) added to the next window",
			resp.CarryoverEndurance, resp.CarryoverStrength)) + "\n")
	}
	if resp.DeloadFlagged {
		b.WriteString(StyleYellow.Render("Status window skips detected: next plan deloads") + "\n")
	}

	out := RenderBox("Reconcile", b.String())

	if resp.Plan != nil {
		out += "\n" + FormatPlan(resp.Plan)
	}
	return out
}
