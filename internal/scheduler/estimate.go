package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/martinhruska/scopeburn/internal/calendar"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// Penalty factors for non-active workers, applied against the role's own base
// days and added to the final completion date (not interleaved into the
// role's timeline).
const (
	blockedPenaltyFactor = 0.5
	waitingPenaltyFactor = 0.2
)

// Config carries the shared calculation context: the workday oracle, the
// scope's calendar settings and the reference "today". All estimates are pure
// functions of Config plus their inputs.
type Config struct {
	Calendar *calendar.Calendar
	Settings domain.ScopeSettings
	Today    time.Time
}

// RoleLoad is the effective workload of one role on one project: the
// planned/done pair plus the FTE capacity attacking it. Staffed is false only
// in assignment-aware mode when nobody is assigned to a role that still has
// work remaining.
type RoleLoad struct {
	Planned float64
	Done    float64
	FTE     float64
	Staffed bool
}

// RoleEstimate is the per-role slice of an Estimate.
type RoleEstimate struct {
	Remaining     float64
	BaseDays      float64
	Start         time.Time
	End           time.Time
	Status        domain.WorkerStatus
	PenaltyDays   float64
	DoneAsPercent bool
}

// Estimate is the outcome of a single-project delivery calculation.
// Unschedulable and CycleDetected are tagged conditions, never errors: the
// caller still gets whatever could be computed and decides how to render the
// condition.
type Estimate struct {
	DurationDays   int
	Completion     time.Time
	Unschedulable  bool
	UnstaffedRoles []string
	CycleDetected  bool
	PenaltyDays    int
	Roles          map[string]RoleEstimate
}

// BuildRoleLoads derives the effective per-role workload for a project.
// When assignments for the project are supplied they take priority: each
// role's FTE is the sum of allocation FTEs and a role without assignees is
// unstaffed. Without assignments the team's global FTE per role is used and
// an uncovered role falls back to FTE 1.0 so the estimate stays finite.
func BuildRoleLoads(p *domain.Project, members []*domain.TeamMember, assignments []*domain.Assignment) map[string]RoleLoad {
	assignmentAware := len(assignments) > 0

	fteByRole := make(map[string]float64)
	if assignmentAware {
		for _, a := range assignments {
			if a.ProjectID == p.ID && a.AllocationFTE > 0 {
				fteByRole[a.Role] += a.AllocationFTE
			}
		}
	} else {
		for _, m := range members {
			if m.FTE > 0 {
				fteByRole[m.Role] += m.FTE
			}
		}
	}

	loads := make(map[string]RoleLoad, len(p.Roles))
	for role, effort := range p.Roles {
		load := RoleLoad{
			Planned: effort.PlannedMandays,
			Done:    effort.DoneValue,
			FTE:     fteByRole[role],
			Staffed: true,
		}
		if load.FTE <= 0 {
			if assignmentAware {
				load.Staffed = false
			} else {
				load.FTE = 1.0
			}
		}
		loads[role] = load
	}
	return loads
}

// EstimateProject computes the projected completion for one project.
// Without workflow data all roles run concurrently: the duration is the
// ceiling of the slowest role's remaining/FTE days. With workflow data a
// two-pass calculation runs: a topological pass lays roles out by dependency
// order, then the summed blocked/waiting penalties push the final date out.
// A dependency cycle falls back to the concurrent calculation with
// CycleDetected set.
func EstimateProject(cfg Config, loads map[string]RoleLoad, wf *domain.Workflow) Estimate {
	est := Estimate{Roles: make(map[string]RoleEstimate, len(loads))}

	for role, load := range loads {
		remaining, asPercent := RemainingMandays(load.Planned, load.Done)
		re := RoleEstimate{
			Remaining:     remaining,
			Status:        wf.StatusFor(role),
			DoneAsPercent: asPercent,
		}
		if load.Staffed && load.FTE > 0 {
			re.BaseDays = remaining / load.FTE
		} else if remaining > 0 {
			est.Unschedulable = true
			est.UnstaffedRoles = append(est.UnstaffedRoles, role)
		}
		est.Roles[role] = re
	}
	sort.Strings(est.UnstaffedRoles)

	if est.Unschedulable {
		return est
	}

	if wf.HasDependencies() {
		if done := estimateWithWorkflow(cfg, &est, wf); done {
			return est
		}
		// Cycle: fall back to the concurrent calculation below.
		est.CycleDetected = true
	}

	estimateConcurrent(cfg, &est, wf)
	return est
}

// estimateConcurrent fills in the basic-mode result: all roles start today,
// duration is the slowest role, penalties (when workflow data is present)
// extend the final date.
func estimateConcurrent(cfg Config, est *Estimate, wf *domain.Workflow) {
	var maxDays float64
	for role, re := range est.Roles {
		re.Start = cfg.Today
		re.End = cfg.Calendar.AddWorkdays(cfg.Today, ceilDays(re.BaseDays), cfg.Settings)
		est.Roles[role] = re
		if re.BaseDays > maxDays {
			maxDays = re.BaseDays
		}
	}
	completion := cfg.Calendar.AddWorkdays(cfg.Today, ceilDays(maxDays), cfg.Settings)
	finishEstimate(cfg, est, completion, wf)
}

// estimateWithWorkflow runs the dependency-ordered pass. Returns false when
// the graph cannot be fully scheduled (a cycle among the project's roles).
func estimateWithWorkflow(cfg Config, est *Estimate, wf *domain.Workflow) bool {
	preds := make(map[string][]string)
	for _, dep := range wf.Dependencies {
		_, fromOK := est.Roles[dep.FromRole]
		_, toOK := est.Roles[dep.ToRole]
		if fromOK && toOK && dep.FromRole != dep.ToRole {
			preds[dep.ToRole] = append(preds[dep.ToRole], dep.FromRole)
		}
	}

	scheduled := make(map[string]bool, len(est.Roles))
	// Each outer iteration schedules at least one role or the graph is cyclic.
	for iter := 0; iter <= len(est.Roles); iter++ {
		progress := false
		for role, re := range est.Roles {
			if scheduled[role] {
				continue
			}
			start := cfg.Today
			ready := true
			for _, pre := range preds[role] {
				if !scheduled[pre] {
					ready = false
					break
				}
				if end := est.Roles[pre].End; end.After(start) {
					start = end
				}
			}
			if !ready {
				continue
			}
			re.Start = start
			re.End = cfg.Calendar.AddWorkdays(start, ceilDays(re.BaseDays), cfg.Settings)
			est.Roles[role] = re
			scheduled[role] = true
			progress = true
		}
		if len(scheduled) == len(est.Roles) {
			break
		}
		if !progress {
			return false
		}
	}

	completion := cfg.Today
	for _, re := range est.Roles {
		if re.End.After(completion) {
			completion = re.End
		}
	}
	finishEstimate(cfg, est, completion, wf)
	return true
}

// finishEstimate applies worker-status penalties to the completion date and
// derives the workday duration. Penalties are computed independently per role
// against its own base days and summed onto the final date.
func finishEstimate(cfg Config, est *Estimate, completion time.Time, wf *domain.Workflow) {
	if wf != nil {
		var totalPenalty float64
		for role, re := range est.Roles {
			switch re.Status {
			case domain.WorkerBlocked:
				re.PenaltyDays = re.BaseDays * blockedPenaltyFactor
			case domain.WorkerWaiting:
				re.PenaltyDays = re.BaseDays * waitingPenaltyFactor
			}
			est.Roles[role] = re
			totalPenalty += re.PenaltyDays
		}
		est.PenaltyDays = ceilDays(totalPenalty)
		if est.PenaltyDays > 0 {
			completion = cfg.Calendar.AddWorkdays(completion, est.PenaltyDays, cfg.Settings)
		}
	}

	est.Completion = completion
	est.DurationDays = cfg.Calendar.WorkdaysDiff(cfg.Today, completion, cfg.Settings)
	if est.DurationDays < 0 {
		est.DurationDays = 0
	}
}

func ceilDays(days float64) int {
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days))
}
