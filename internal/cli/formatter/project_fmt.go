package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/scheduler"
)

// FormatProjectList renders the project backlog table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "PRIO", "NAME", "STATUS", "PLAN", "PROGRESS", "DEADLINE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		deadline := Dim("--")
		if p.Deadline != nil {
			deadline = StyleFg.Render(p.Deadline.Format("2006-01-02"))
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Dim(strconv.Itoa(p.Priority)),
			Bold(p.Name),
			StatusPill(p.Status),
			StyleFg.Render(FormatMandays(p.TotalPlannedMandays())),
			RenderProgress(projectDoneFraction(p), 10),
			deadline,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectInspect renders one project with its full role plan.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(p.Name), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("Priority %s  %s\n", Bold(strconv.Itoa(p.Priority)), StatusPill(p.Status)))
	if p.Deadline != nil {
		b.WriteString(fmt.Sprintf("Deadline %s\n", StyleFg.Render(p.Deadline.Format("2006-01-02"))))
	}
	if p.StartDay != nil {
		b.WriteString(fmt.Sprintf("Not before %s\n", StyleFg.Render(p.StartDay.Format("2006-01-02"))))
	}
	if p.StartedAt != nil {
		b.WriteString(fmt.Sprintf("Started %s\n", StyleFg.Render(HumanDate(*p.StartedAt))))
	}
	b.WriteString("\n")

	headers := []string{"ROLE", "PLANNED", "DONE"}
	rows := make([][]string, 0, len(p.Roles))
	for _, role := range p.RoleNames() {
		e := p.Roles[role]
		rows = append(rows, []string{
			RoleBadge(role),
			StyleFg.Render(FormatMandays(e.PlannedMandays)),
			StyleFg.Render(strconv.FormatFloat(e.DoneValue, 'f', -1, 64)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Project", b.String())
}

// FormatMemberList renders the team table with vacation counts.
func FormatMemberList(members []*domain.TeamMember) string {
	headers := []string{"ID", "NAME", "ROLE", "FTE", "VACATIONS"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			TruncID(m.ID),
			Bold(m.Name),
			RoleBadge(m.Role),
			StyleFg.Render(FormatFTE(m.FTE)),
			Dim(strconv.Itoa(len(m.Vacations))),
		})
	}
	return RenderTable(headers, rows)
}

// projectDoneFraction approximates overall progress as completed work over
// the plan, using the estimator's own reading of ambiguous done values.
func projectDoneFraction(p *domain.Project) float64 {
	var planned, done float64
	for _, e := range p.Roles {
		if e.PlannedMandays <= 0 {
			continue
		}
		remaining, _ := scheduler.RemainingMandays(e.PlannedMandays, e.DoneValue)
		if remaining > e.PlannedMandays {
			remaining = e.PlannedMandays
		}
		planned += e.PlannedMandays
		done += e.PlannedMandays - remaining
	}
	if planned <= 0 {
		return 0
	}
	return done / planned
}
