package formatter

import (
	"fmt"
	"strings"

	"github.com/martinhruska/scopeburn/internal/app"
)

// FormatForecast renders the scope-wide forecast as a styled dashboard.
func FormatForecast(resp *app.ForecastResponse) string {
	var b strings.Builder

	headers := []string{"NAME", "STATUS", "DURATION", "COMPLETION", "DEADLINE", "DELIVERY"}
	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		duration := Dim("--")
		completion := Dim("unschedulable")
		if !p.Unschedulable {
			duration = StyleFg.Render(FormatWorkdays(p.DurationDays))
			completion = OptionalDate(p.Completion)
		}
		rows = append(rows, []string{
			Bold(p.ProjectName),
			StatusPill(p.Status),
			duration,
			completion,
			OptionalDate(p.Deadline),
			SlipIndicator(p.SlipDays),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(formatSlipSummaryLine(resp.Summary))
	b.WriteString("\n")

	for _, p := range resp.Projects {
		for _, w := range p.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING %s: %s", p.ProjectName, w)) + "\n")
		}
	}

	return RenderBox("Forecast", b.String())
}

// FormatProjectForecast renders the detailed per-role forecast of one project.
func FormatProjectForecast(view *app.ProjectForecastView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n", Bold(view.ProjectName), TruncID(view.ProjectID), StatusPill(view.Status)))
	if view.Unschedulable {
		b.WriteString(StyleRed.Render("Unschedulable: no capacity for "+strings.Join(view.UnstaffedRoles, ", ")) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Duration %s, completion %s",
			Bold(FormatWorkdays(view.DurationDays)), OptionalDate(view.Completion)))
		if view.PenaltyDays > 0 {
			b.WriteString(Dim(fmt.Sprintf(" (incl. %d penalty days)", view.PenaltyDays)))
		}
		b.WriteString("\n")
		if view.Deadline != nil {
			b.WriteString(fmt.Sprintf("Deadline %s  %s\n", OptionalDate(view.Deadline), SlipIndicator(view.SlipDays)))
		} else {
			b.WriteString(fmt.Sprintf("Delivery %s\n", SlipIndicator(view.SlipDays)))
		}
		if view.BlockedBy != "" {
			b.WriteString(Dim("Queued behind "+view.BlockedBy) + "\n")
		}
	}
	b.WriteString("\n")

	headers := []string{"ROLE", "PLAN", "REMAINING", "FTE", "WORKER", "START", "END"}
	rows := make([][]string, 0, len(view.Roles))
	for _, r := range view.Roles {
		fte := Dim("unstaffed")
		if r.Staffed {
			fte = StyleFg.Render(FormatFTE(r.EffectiveFTE))
		}
		remaining := FormatMandays(r.RemainingMandays)
		if r.DoneAsPercent {
			remaining += Dim(" (from %)")
		}
		rows = append(rows, []string{
			RoleBadge(r.Role),
			StyleFg.Render(FormatMandays(r.PlannedMandays)),
			StyleFg.Render(remaining),
			fte,
			WorkerPill(r.Status),
			OptionalDate(r.Start),
			OptionalDate(r.End),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(view.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range view.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Forecast", b.String())
}

func formatSlipSummaryLine(s app.SlipSummary) string {
	delayed := StyleRed.Render(fmt.Sprintf("%d Delayed", s.Delayed))
	onTime := StyleYellow.Render(fmt.Sprintf("%d On time", s.OnTime))
	ahead := StyleGreen.Render(fmt.Sprintf("%d Ahead", s.Ahead))
	return fmt.Sprintf("%s, %s, %s", delayed, onTime, ahead)
}
