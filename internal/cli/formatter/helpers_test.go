package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/testutil"
)

func TestSlipIndicator(t *testing.T) {
	neg, zero, pos := -3, 0, 5
	assert.Contains(t, SlipIndicator(&neg), "3d LATE")
	assert.Contains(t, SlipIndicator(&zero), "ON TIME")
	assert.Contains(t, SlipIndicator(&pos), "5d RESERVE")
	assert.Contains(t, SlipIndicator(nil), "NO TARGET")
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, StatusPill(domain.ProjectInProgress), "In progress")
	assert.Contains(t, StatusPill(domain.ProjectNotStarted), "Not started")
	assert.Contains(t, StatusPill(domain.ProjectArchived), "Archived")
	assert.Contains(t, StatusPill(domain.ProjectStatus("odd")), "odd")
}

func TestWorkerPill(t *testing.T) {
	assert.Contains(t, WorkerPill(domain.WorkerBlocked), "blocked")
	assert.Contains(t, WorkerPill(domain.WorkerWaiting), "waiting")
	assert.Contains(t, WorkerPill(domain.WorkerActive), "active")
}

func TestFormatMandays(t *testing.T) {
	assert.Equal(t, "4md", FormatMandays(4))
	assert.Equal(t, "2.5md", FormatMandays(2.5))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "VALUE"},
		[][]string{{"a", "1"}, {"longer-name", "2"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, two data rows.
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "longer-name")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(0.5, 10), "50%")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Forecast", "content")
	assert.Contains(t, out, "FORECAST")
	assert.Contains(t, out, "content")
	assert.Contains(t, out, "╭")
}

func TestFormatProjectList_ShowsPlanAndDeadline(t *testing.T) {
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	p := testutil.NewTestProject("Checkout Redesign",
		testutil.WithDeadline(deadline),
		testutil.WithRole("fe", 20, 5),
		testutil.WithRole("be", 30, 0),
	)

	out := FormatProjectList([]*domain.Project{p})
	assert.Contains(t, out, "Checkout Redesign")
	assert.Contains(t, out, "50md")
	assert.Contains(t, out, "2025-06-30")
}

func TestFormatProjectInspect_ListsRolesInOrder(t *testing.T) {
	p := testutil.NewTestProject("Alpha",
		testutil.WithRole("design", 5, 0),
		testutil.WithRole("fe", 20, 5),
	)

	out := FormatProjectInspect(p)
	assert.Less(t, strings.Index(out, "fe"), strings.Index(out, "design"))
}

func TestFormatMemberList(t *testing.T) {
	m := testutil.NewTestMember("Adam", "be", testutil.WithFTE(0.5))
	out := FormatMemberList([]*domain.TeamMember{m})
	assert.Contains(t, out, "Adam")
	assert.Contains(t, out, "0.5")
}
