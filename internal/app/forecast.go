package app

import (
	"time"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// ForecastRequest selects what the forecast pipeline computes. Now overrides
// the reference "today" (tests and what-if runs); nil means time.Now in UTC.
type ForecastRequest struct {
	Now             *time.Time
	ProjectScope    []string
	IncludeArchived bool
}

func NewForecastRequest() ForecastRequest {
	return ForecastRequest{}
}

// RoleForecastView is the per-role breakdown inside a project forecast.
type RoleForecastView struct {
	Role             string
	PlannedMandays   float64
	RemainingMandays float64
	EffectiveFTE     float64
	BaseDays         float64
	Start            *string
	End              *string
	Status           domain.WorkerStatus
	PenaltyDays      float64
	DoneAsPercent    bool
	Staffed          bool
}

// ProjectForecastView is one project's delivery forecast: the estimated
// completion, the slip against its reference date, and the priority window
// the sequencer assigned it.
type ProjectForecastView struct {
	ProjectID      string
	ProjectName    string
	Priority       int
	Status         domain.ProjectStatus
	DurationDays   int
	Completion     *string
	Deadline       *string
	SlipDays       *int
	WindowStart    *string
	WindowEnd      *string
	BlockedBy      string
	Unschedulable  bool
	UnstaffedRoles []string
	CycleDetected  bool
	PenaltyDays    int
	Roles          []RoleForecastView
	Warnings       []string
}

// SlipSummary aggregates slip across the forecasted scope. Projects without
// a resolvable reference date count toward Total but not the buckets.
type SlipSummary struct {
	GeneratedAt     time.Time
	AverageSlipDays int
	Total           int
	Delayed         int
	OnTime          int
	Ahead           int
}

type ForecastResponse struct {
	Summary  SlipSummary
	Projects []ProjectForecastView
	Warnings []string
}

// TimelineEntry is one row of the scope timeline: the priority window a
// project occupies when the team works the backlog in priority order.
type TimelineEntry struct {
	ProjectID     string
	ProjectName   string
	Priority      int
	Status        domain.ProjectStatus
	Start         *string
	End           *string
	BlockedBy     string
	Unschedulable bool
}
