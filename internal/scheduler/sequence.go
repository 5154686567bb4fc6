package scheduler

import (
	"sort"
	"time"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// SequenceItem pairs a project with its precomputed estimate for sequencing.
type SequenceItem struct {
	Project  *domain.Project
	Estimate Estimate
}

// PriorityWindow is the derived start/end range the sequencer assigns to a
// project when the scope's projects are laid end-to-end through shared team
// capacity. Windows are recomputed on every read and never persisted.
type PriorityWindow struct {
	ProjectID     string
	ProjectName   string
	Start         time.Time
	End           time.Time
	Unschedulable bool
	// BlockedBy names the project whose window this one queues behind;
	// empty for projects that start immediately.
	BlockedBy string
}

// SortSequenceItems orders projects for capacity sequencing:
// priority ascending, then status rank (in_progress, not_started, paused),
// then creation time, with the ID as a deterministic final tiebreak.
func SortSequenceItems(items []SequenceItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Project, items[j].Project
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if ra, rb := a.Status.SequenceRank(), b.Status.SequenceRank(); ra != rb {
			return ra < rb
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// SequenceProjects assigns each schedulable project a priority window.
// Projects queue strictly after their predecessor's end (next workday),
// except in-progress projects which keep their recorded start regardless of
// queue position. Unschedulable projects receive a tagged window and occupy
// no capacity, so later windows stay meaningful.
func SequenceProjects(cfg Config, items []SequenceItem) []PriorityWindow {
	var schedulable []SequenceItem
	for _, it := range items {
		if it.Project.Status.Schedulable() {
			schedulable = append(schedulable, it)
		}
	}
	SortSequenceItems(schedulable)

	windows := make([]PriorityWindow, 0, len(schedulable))
	var prevEnd *time.Time
	var prevName string

	for _, it := range schedulable {
		p := it.Project
		w := PriorityWindow{ProjectID: p.ID, ProjectName: p.Name}

		if it.Estimate.Unschedulable {
			w.Unschedulable = true
			windows = append(windows, w)
			continue
		}

		switch {
		case p.Status == domain.ProjectInProgress:
			// Already started: queue position never pushes it later.
			if p.StartedAt != nil {
				w.Start = *p.StartedAt
			} else {
				w.Start = cfg.Today
			}
		case prevEnd == nil:
			w.Start = cfg.Today
		default:
			w.Start = cfg.Calendar.NextWorkday(prevEnd.AddDate(0, 0, 1), cfg.Settings)
			w.BlockedBy = prevName
		}

		// An explicit start day defers a queued project but never pulls an
		// in-progress one.
		if p.Status != domain.ProjectInProgress && p.StartDay != nil && p.StartDay.After(w.Start) {
			w.Start = cfg.Calendar.NextWorkday(*p.StartDay, cfg.Settings)
		}

		w.End = cfg.Calendar.AddWorkdays(w.Start, it.Estimate.DurationDays, cfg.Settings)
		windows = append(windows, w)

		end := w.End
		prevEnd = &end
		prevName = p.Name
	}

	return windows
}
