package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject_RoleNames_StandardOrderThenCustom(t *testing.T) {
	p := &Project{Roles: map[string]RoleEffort{
		"design": {PlannedMandays: 5},
		"be":     {PlannedMandays: 10},
		"fe":     {PlannedMandays: 8},
		"arch":   {PlannedMandays: 2},
	}}
	assert.Equal(t, []string{"fe", "be", "arch", "design"}, p.RoleNames())
}

func TestProject_TotalPlannedMandays_IgnoresNegative(t *testing.T) {
	p := &Project{Roles: map[string]RoleEffort{
		"fe": {PlannedMandays: 8},
		"be": {PlannedMandays: -3},
	}}
	assert.Equal(t, 8.0, p.TotalPlannedMandays())
}

func TestProjectStatus_Schedulable(t *testing.T) {
	assert.True(t, ProjectNotStarted.Schedulable())
	assert.True(t, ProjectInProgress.Schedulable())
	assert.True(t, ProjectPaused.Schedulable())
	assert.False(t, ProjectCompleted.Schedulable())
	assert.False(t, ProjectCancelled.Schedulable())
	assert.False(t, ProjectArchived.Schedulable())
	assert.False(t, ProjectSuspended.Schedulable())
}

func TestVacation_Contains_InclusiveBounds(t *testing.T) {
	v := Vacation{
		StartDate: time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, v.Contains(time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, v.Contains(time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, v.Contains(time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)))
}

func TestWorkflow_StatusFor_DefaultsActive(t *testing.T) {
	var w *Workflow
	assert.Equal(t, WorkerActive, w.StatusFor("be"))

	w = &Workflow{Statuses: map[string]WorkerStatus{"qa": WorkerBlocked}}
	assert.Equal(t, WorkerBlocked, w.StatusFor("qa"))
	assert.Equal(t, WorkerActive, w.StatusFor("fe"))
}
