package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/testutil"
)

func TestProjectService_CreateFillsDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Checkout Redesign", Priority: 1}
	require.NoError(t, env.projects.Create(ctx, p))

	got, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.ProjectNotStarted, got.Status)
	assert.Nil(t, got.StartedAt)
}

func TestProjectService_StartRecordsStartedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha")
	require.NoError(t, env.projects.Create(ctx, p))
	require.NoError(t, env.projects.Start(ctx, p.ID))

	got, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectInProgress, got.Status)
	require.NotNil(t, got.StartedAt)

	// A second start must not move the recorded start.
	started := *got.StartedAt
	require.NoError(t, env.projects.Start(ctx, p.ID))
	got, err = env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, started, *got.StartedAt)
}

func TestProjectService_SetProgressKeepsPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha", testutil.WithRole("be", 20, 0))
	require.NoError(t, env.projects.Create(ctx, p))
	require.NoError(t, env.projects.SetProgress(ctx, p.ID, "be", 15))

	got, err := env.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEffort{PlannedMandays: 20, DoneValue: 15}, got.Roles["be"])
}

func TestProjectService_SetProgressUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha", testutil.WithRole("be", 20, 0))
	require.NoError(t, env.projects.Create(ctx, p))

	err := env.projects.SetProgress(ctx, p.ID, "qa", 5)
	assert.ErrorContains(t, err, `role "qa" not planned`)
}

func TestProjectService_SetStatusRejectsUnknown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha")
	require.NoError(t, env.projects.Create(ctx, p))

	err := env.projects.SetStatus(ctx, p.ID, domain.ProjectStatus("bogus"))
	assert.ErrorContains(t, err, "invalid project status")
}

func TestProjectService_DeleteRequiresArchiveUnlessForced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha")
	require.NoError(t, env.projects.Create(ctx, p))

	err := env.projects.Delete(ctx, p.ID, false)
	assert.ErrorContains(t, err, "must be archived")

	require.NoError(t, env.projects.Delete(ctx, p.ID, true))
	_, err = env.projects.GetByID(ctx, p.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestTeamService_AddMemberDefaultsFTE(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	m := &domain.TeamMember{Name: "Adam", Role: "be"}
	require.NoError(t, env.team.AddMember(ctx, m))

	got, err := env.team.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.FTE)
}

func TestTeamService_VacationValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	m := testutil.NewTestMember("Adam", "be")
	require.NoError(t, env.team.AddMember(ctx, m))

	err := env.team.AddVacation(ctx, &domain.Vacation{
		MemberID:  m.ID,
		StartDate: date(2025, 7, 11),
		EndDate:   date(2025, 7, 7),
	})
	assert.ErrorContains(t, err, "end date before start date")

	require.NoError(t, env.team.AddVacation(ctx, &domain.Vacation{
		MemberID:  m.ID,
		StartDate: date(2025, 7, 7),
		EndDate:   date(2025, 7, 11),
	}))
	got, err := env.team.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, got.Vacations, 1)
}

func TestAssignmentService_ValidatesReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha")
	m := testutil.NewTestMember("Adam", "be")
	require.NoError(t, env.projects.Create(ctx, p))
	require.NoError(t, env.team.AddMember(ctx, m))

	assert.Error(t, env.assignments.Assign(ctx, "nope", m.ID, "be", 1.0))
	assert.Error(t, env.assignments.Assign(ctx, p.ID, "nope", "be", 1.0))
	assert.ErrorContains(t, env.assignments.Assign(ctx, p.ID, m.ID, "be", 0), "must be positive")

	require.NoError(t, env.assignments.Assign(ctx, p.ID, m.ID, "be", 0.5))
	assignments, err := env.assignments.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, 0.5, assignments[0].AllocationFTE)
}
