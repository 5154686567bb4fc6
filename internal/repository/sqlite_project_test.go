package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/testutil"
)

func TestSQLiteProjectRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	p := testutil.NewTestProject("Checkout Redesign",
		testutil.WithPriority(1),
		testutil.WithDeadline(deadline),
		testutil.WithRole("fe", 20, 5),
		testutil.WithRole("be", 30, 0),
	)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout Redesign", got.Name)
	assert.Equal(t, 1, got.Priority)
	assert.Equal(t, domain.ProjectNotStarted, got.Status)
	require.NotNil(t, got.Deadline)
	assert.Equal(t, deadline, *got.Deadline)
	assert.Equal(t, domain.RoleEffort{PlannedMandays: 20, DoneValue: 5}, got.Roles["fe"])
	assert.Equal(t, domain.RoleEffort{PlannedMandays: 30, DoneValue: 0}, got.Roles["be"])
}

func TestSQLiteProjectRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorContains(t, err, "project not found")
}

func TestSQLiteProjectRepo_ListExcludesArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	a := testutil.NewTestProject("Alpha", testutil.WithPriority(1))
	b := testutil.NewTestProject("Beta", testutil.WithPriority(2))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Archive(ctx, b.ID))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Alpha", active[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteProjectRepo_ListOrdersByPriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Low", testutil.WithPriority(5))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("High", testutil.WithPriority(1))))

	projects, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "High", projects[0].Name)
}

func TestSQLiteProjectRepo_UpdateStatusAndStartedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha")
	require.NoError(t, repo.Create(ctx, p))

	started := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	p.Status = domain.ProjectInProgress
	p.StartedAt = &started
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
	assert.Equal(t, started, *got.StartedAt)
}

func TestSQLiteProjectRepo_SetRoleEffortUpserts(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha", testutil.WithRole("qa", 10, 0))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetRoleEffort(ctx, p.ID, "qa", 12, 4))
	require.NoError(t, repo.SetRoleEffort(ctx, p.ID, "design", 6, 0))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEffort{PlannedMandays: 12, DoneValue: 4}, got.Roles["qa"])
	assert.Equal(t, domain.RoleEffort{PlannedMandays: 6}, got.Roles["design"])
}

func TestSQLiteProjectRepo_RemoveRole(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha", testutil.WithRole("fe", 10, 0), testutil.WithRole("be", 5, 0))
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.RemoveRole(ctx, p.ID, "fe"))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Roles, "fe")
	assert.Contains(t, got.Roles, "be")
}

func TestSQLiteProjectRepo_DeleteCascadesRoles(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Alpha", testutil.WithRole("fe", 10, 0))
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM project_roles`).Scan(&count))
	assert.Equal(t, 0, count)
}
