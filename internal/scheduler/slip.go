package scheduler

import (
	"math"
	"time"
)

// Slip compares an estimated completion against a reference date.
// Workdays is the signed workday distance: positive when the estimate lands
// before the reference (reserve), negative when it overshoots (slip).
type Slip struct {
	Workdays int
}

// DeliveryInfo is the per-project slip view: either a signed slip against a
// deadline/priority window, or a plain duration estimate when the project has
// neither.
type DeliveryInfo struct {
	Completion   time.Time
	Slip         *int
	DurationDays int
}

// ProjectSlip derives the delivery info for one estimated project. The
// explicit deadline wins; otherwise the priority-window end serves as the
// reference; with neither, only the duration estimate is reported and Slip
// stays nil.
func ProjectSlip(cfg Config, est Estimate, deadline *time.Time, window *PriorityWindow) DeliveryInfo {
	info := DeliveryInfo{
		Completion:   est.Completion,
		DurationDays: est.DurationDays,
	}
	if est.Unschedulable {
		return info
	}

	var ref *time.Time
	switch {
	case deadline != nil:
		ref = deadline
	case window != nil && !window.Unschedulable:
		ref = &window.End
	}
	if ref == nil {
		return info
	}

	s := cfg.Calendar.WorkdaysDiff(est.Completion, *ref, cfg.Settings)
	info.Slip = &s
	return info
}

// SlipReport aggregates slip across a scope. Projects whose slip could not be
// resolved are counted in TotalProjects but excluded from the average and the
// delayed/on-time/ahead buckets.
type SlipReport struct {
	AverageSlip     int
	TotalProjects   int
	DelayedProjects int
	OnTimeProjects  int
	AheadProjects   int
}

// BuildSlipReport folds per-project slips into the scope summary. An empty
// scope is a defined zero result, not an error.
func BuildSlipReport(slips []*int) SlipReport {
	var report SlipReport
	report.TotalProjects = len(slips)

	sum := 0
	counted := 0
	for _, s := range slips {
		if s == nil {
			continue
		}
		sum += *s
		counted++
		switch {
		case *s < 0:
			report.DelayedProjects++
		case *s > 0:
			report.AheadProjects++
		default:
			report.OnTimeProjects++
		}
	}
	if counted > 0 {
		report.AverageSlip = int(math.Round(float64(sum) / float64(counted)))
	}
	return report
}
