package formatter

import (
	"strconv"
	"strings"

	"github.com/martinhruska/scopeburn/internal/app"
)

// FormatTimeline renders the priority-ordered scope timeline: each project's
// derived start/end window and what it queues behind.
func FormatTimeline(entries []app.TimelineEntry) string {
	var b strings.Builder

	headers := []string{"PRIO", "NAME", "STATUS", "START", "END", "QUEUED BEHIND"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		start, end := OptionalDate(e.Start), OptionalDate(e.End)
		if e.Unschedulable {
			start = StyleRed.Render("unschedulable")
			end = Dim("--")
		}
		blockedBy := Dim("--")
		if e.BlockedBy != "" {
			blockedBy = StyleFg.Render(e.BlockedBy)
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(e.Priority)),
			Bold(e.ProjectName),
			StatusPill(e.Status),
			start,
			end,
			blockedBy,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Timeline", b.String())
}
