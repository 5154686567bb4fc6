package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhruska/scopeburn/internal/calendar"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// Monday, no holidays: keeps workday arithmetic easy to verify by hand.
func testConfig() Config {
	return Config{
		Calendar: calendar.New(),
		Settings: domain.ScopeSettings{IncludeHolidays: false},
		Today:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func staffed(planned, done, fte float64) RoleLoad {
	return RoleLoad{Planned: planned, Done: done, FTE: fte, Staffed: true}
}

func TestEstimateProject_MaxNotSum(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(3, 0, 1),
		"be": staffed(5, 0, 1),
	}

	est := EstimateProject(cfg, loads, nil)

	assert.Equal(t, 5, est.DurationDays)
	assert.Equal(t, date(2025, 3, 17), est.Completion) // Mon + 5 workdays
	assert.False(t, est.Unschedulable)
	assert.False(t, est.CycleDetected)
}

func TestEstimateProject_FTEDividesRemaining(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{"be": staffed(10, 0, 2)}

	est := EstimateProject(cfg, loads, nil)

	assert.Equal(t, 5, est.DurationDays)
}

func TestEstimateProject_FractionalDaysRoundUp(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{"be": staffed(5, 0, 2)} // 2.5 days

	est := EstimateProject(cfg, loads, nil)

	assert.Equal(t, 3, est.DurationDays)
}

func TestEstimateProject_DoneValueReducesWork(t *testing.T) {
	cfg := testConfig()
	// done=80 > 20*1.5: percent branch, remaining = 4.
	loads := map[string]RoleLoad{"fe": staffed(20, 80, 1)}

	est := EstimateProject(cfg, loads, nil)

	assert.Equal(t, 4, est.DurationDays)
	assert.True(t, est.Roles["fe"].DoneAsPercent)
}

func TestEstimateProject_UnstaffedRoleIsUnschedulable(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(3, 0, 1),
		"qa": {Planned: 5, Done: 0, FTE: 0, Staffed: false},
	}

	est := EstimateProject(cfg, loads, nil)

	assert.True(t, est.Unschedulable)
	assert.Equal(t, []string{"qa"}, est.UnstaffedRoles)
	assert.True(t, est.Completion.IsZero())
}

func TestEstimateProject_UnstaffedRoleWithNoWorkIsHarmless(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(3, 0, 1),
		"qa": {Planned: 5, Done: 5, FTE: 0, Staffed: false}, // nothing left
	}

	est := EstimateProject(cfg, loads, nil)

	assert.False(t, est.Unschedulable)
	assert.Equal(t, 3, est.DurationDays)
}

func TestEstimateProject_WorkflowSequencesDependentRoles(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(2, 0, 1),
		"be": staffed(3, 0, 1),
	}
	wf := &domain.Workflow{
		Dependencies: []domain.RoleDependency{{FromRole: "fe", ToRole: "be"}},
	}

	est := EstimateProject(cfg, loads, wf)

	require.False(t, est.CycleDetected)
	// fe: Mon + 2 = Wed; be starts at fe's end, + 3 workdays = next Monday.
	assert.Equal(t, date(2025, 3, 12), est.Roles["fe"].End)
	assert.Equal(t, date(2025, 3, 12), est.Roles["be"].Start)
	assert.Equal(t, date(2025, 3, 17), est.Completion)
	assert.Equal(t, 5, est.DurationDays)
}

func TestEstimateProject_WorkflowDiamond(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(2, 0, 1),
		"be": staffed(4, 0, 1),
		"qa": staffed(1, 0, 1),
	}
	wf := &domain.Workflow{
		Dependencies: []domain.RoleDependency{
			{FromRole: "fe", ToRole: "qa"},
			{FromRole: "be", ToRole: "qa"},
		},
	}

	est := EstimateProject(cfg, loads, wf)

	// qa starts at the later of fe (Wed) and be (Fri) ends.
	assert.Equal(t, date(2025, 3, 14), est.Roles["qa"].Start)
	assert.Equal(t, date(2025, 3, 17), est.Completion)
}

func TestEstimateProject_BlockedAndWaitingPenalties(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{"be": staffed(4, 0, 1)}
	wf := &domain.Workflow{
		Statuses: map[string]domain.WorkerStatus{"be": domain.WorkerBlocked},
	}

	est := EstimateProject(cfg, loads, wf)

	// 4 base days + ceil(4*0.5) penalty = 6 workdays.
	assert.Equal(t, 2, est.PenaltyDays)
	assert.Equal(t, 6, est.DurationDays)
}

func TestEstimateProject_WaitingPenalty(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{"qa": staffed(5, 0, 1)}
	wf := &domain.Workflow{
		Statuses: map[string]domain.WorkerStatus{"qa": domain.WorkerWaiting},
	}

	est := EstimateProject(cfg, loads, wf)

	// 5 base days + ceil(5*0.2) = 6 workdays.
	assert.Equal(t, 1, est.PenaltyDays)
	assert.Equal(t, 6, est.DurationDays)
}

func TestEstimateProject_PenaltiesAddToFinalDate(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(2, 0, 1),
		"be": staffed(1, 0, 1),
	}
	wf := &domain.Workflow{
		Dependencies: []domain.RoleDependency{{FromRole: "fe", ToRole: "be"}},
		Statuses:     map[string]domain.WorkerStatus{"fe": domain.WorkerBlocked},
	}

	est := EstimateProject(cfg, loads, wf)

	// Base pass ignores penalties: fe ends Wed, be ends Thu.
	assert.Equal(t, date(2025, 3, 13), est.Roles["be"].End)
	// The fe penalty (ceil(2*0.5)=1) pushes the final date, not be's start.
	assert.Equal(t, 1, est.PenaltyDays)
	assert.Equal(t, date(2025, 3, 14), est.Completion)
}

func TestEstimateProject_CycleFallsBackToConcurrent(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(3, 0, 1),
		"be": staffed(5, 0, 1),
	}
	wf := &domain.Workflow{
		Dependencies: []domain.RoleDependency{
			{FromRole: "fe", ToRole: "be"},
			{FromRole: "be", ToRole: "fe"},
		},
	}

	est := EstimateProject(cfg, loads, wf)

	assert.True(t, est.CycleDetected)
	assert.Equal(t, 5, est.DurationDays) // concurrent max, not a hang
}

func TestEstimateProject_ParallelFlagIgnoresDependencies(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(2, 0, 1),
		"be": staffed(3, 0, 1),
	}
	wf := &domain.Workflow{
		Parallel:     true,
		Dependencies: []domain.RoleDependency{{FromRole: "fe", ToRole: "be"}},
	}

	est := EstimateProject(cfg, loads, wf)

	assert.Equal(t, 3, est.DurationDays)
	assert.False(t, est.CycleDetected)
}

func TestEstimateProject_Deterministic(t *testing.T) {
	cfg := testConfig()
	loads := map[string]RoleLoad{
		"fe": staffed(7, 2, 1.5),
		"be": staffed(9, 30, 2),
		"qa": staffed(4, 0, 0.5),
	}
	wf := &domain.Workflow{
		Dependencies: []domain.RoleDependency{
			{FromRole: "be", ToRole: "qa"},
		},
		Statuses: map[string]domain.WorkerStatus{"qa": domain.WorkerWaiting},
	}

	first := EstimateProject(cfg, loads, wf)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, EstimateProject(cfg, loads, wf))
	}
}

func TestBuildRoleLoads_AssignmentsTakePriority(t *testing.T) {
	p := &domain.Project{ID: "p1", Roles: map[string]domain.RoleEffort{
		"fe": {PlannedMandays: 10},
	}}
	members := []*domain.TeamMember{{ID: "m1", Role: "fe", FTE: 1.0}}
	assignments := []*domain.Assignment{
		{ProjectID: "p1", MemberID: "m1", Role: "fe", AllocationFTE: 0.5},
	}

	loads := BuildRoleLoads(p, members, assignments)

	assert.Equal(t, 0.5, loads["fe"].FTE)
	assert.True(t, loads["fe"].Staffed)
}

func TestBuildRoleLoads_TeamModeUnstaffedRoleDefaultsToOne(t *testing.T) {
	p := &domain.Project{ID: "p1", Roles: map[string]domain.RoleEffort{
		"qa": {PlannedMandays: 5},
	}}
	members := []*domain.TeamMember{{ID: "m1", Role: "fe", FTE: 1.0}}

	loads := BuildRoleLoads(p, members, nil)

	assert.Equal(t, 1.0, loads["qa"].FTE)
	assert.True(t, loads["qa"].Staffed)
}

func TestBuildRoleLoads_AssignmentModeUnstaffedRoleFlagged(t *testing.T) {
	p := &domain.Project{ID: "p1", Roles: map[string]domain.RoleEffort{
		"fe": {PlannedMandays: 10},
		"qa": {PlannedMandays: 5},
	}}
	assignments := []*domain.Assignment{
		{ProjectID: "p1", MemberID: "m1", Role: "fe", AllocationFTE: 1.0},
	}

	loads := BuildRoleLoads(p, nil, assignments)

	assert.True(t, loads["fe"].Staffed)
	assert.False(t, loads["qa"].Staffed)
}

func TestBuildRoleLoads_IgnoresOtherProjectsAssignments(t *testing.T) {
	p := &domain.Project{ID: "p1", Roles: map[string]domain.RoleEffort{
		"fe": {PlannedMandays: 10},
	}}
	assignments := []*domain.Assignment{
		{ProjectID: "p2", MemberID: "m1", Role: "fe", AllocationFTE: 1.0},
		{ProjectID: "p1", MemberID: "m2", Role: "fe", AllocationFTE: 0.8},
	}

	loads := BuildRoleLoads(p, nil, assignments)

	assert.Equal(t, 0.8, loads["fe"].FTE)
}
