package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/martinhruska/scopeburn/internal/app"
	"github.com/martinhruska/scopeburn/internal/calendar"
	"github.com/martinhruska/scopeburn/internal/repository"
	"github.com/martinhruska/scopeburn/internal/testutil"
)

// testToday is a Monday with no public holidays nearby in the default
// calendar, so workday arithmetic in the tests stays easy to follow.
var testToday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	db          *sql.DB
	projects    ProjectService
	team        TeamService
	assignments AssignmentService
	workflows   WorkflowService
	settings    SettingsService
	forecast    ForecastService
	importer    ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	memberRepo := repository.NewSQLiteTeamMemberRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	workflowRepo := repository.NewSQLiteWorkflowRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	return &testEnv{
		db:          database,
		projects:    NewProjectService(projectRepo),
		team:        NewTeamService(memberRepo),
		assignments: NewAssignmentService(assignmentRepo, projectRepo, memberRepo),
		workflows:   NewWorkflowService(workflowRepo, projectRepo),
		settings:    NewSettingsService(settingsRepo),
		forecast: NewForecastService(
			projectRepo, memberRepo, assignmentRepo, workflowRepo, settingsRepo, calendar.New(),
		),
		importer: NewImportService(testutil.NewTestUoW(database)),
	}
}

func forecastAt(day time.Time) app.ForecastRequest {
	return app.ForecastRequest{Now: &day}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
