package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/martinhruska/scopeburn/internal/domain"
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
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.ProjectInProgress:
		return StyleGreen.Render("● In progress")
	case domain.ProjectPaused:
		return StyleYellow.Render("○ Paused")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectCancelled:
		return StyleDim.Render("⊘ Cancelled")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	case domain.ProjectSuspended:
		return StyleDim.Render("◌ Suspended")
	default:
		return StyleDim.Render(string(status))
	}
}

// WorkerPill returns a colored indicator for a role's worker status.
func WorkerPill(status domain.WorkerStatus) string {
	switch status {
	case domain.WorkerBlocked:
		return StyleRed.Render("■ blocked")
	case domain.WorkerWaiting:
		return StyleYellow.Render("◆ waiting")
	default:
		return StyleGreen.Render("● active")
	}
}

// RoleBadge returns a purple-styled role label.
func RoleBadge(role string) string {
	if role == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(role)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMandays renders a manday quantity without trailing zeros ("4", "2.5").
func FormatMandays(md float64) string {
	s := strconv.FormatFloat(md, 'f', -1, 64)
	return s + "md"
}

// FormatWorkdays renders a workday count ("6 wd").
func FormatWorkdays(days int) string {
	return fmt.Sprintf("%d wd", days)
}

// FormatFTE renders an FTE fraction ("1.0", "0.5").
func FormatFTE(fte float64) string {
	return strconv.FormatFloat(fte, 'f', 1, 64)
}

// OptionalDate renders a nullable YYYY-MM-DD string, dimmed "--" when unset.
func OptionalDate(s *string) string {
	if s == nil || *s == "" {
		return Dim("--")
	}
	return StyleFg.Render(*s)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return t.Format("Jan 2, 2006")
}
