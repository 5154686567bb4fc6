package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestProjectSlip_ReserveIsPositive(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 10), DurationDays: 0}
	deadline := timePtr(date(2025, 3, 13))

	info := ProjectSlip(cfg, est, deadline, nil)

	require.NotNil(t, info.Slip)
	assert.Equal(t, 3, *info.Slip)
}

func TestProjectSlip_LatenessIsNegative(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 13)}
	deadline := timePtr(date(2025, 3, 10))

	info := ProjectSlip(cfg, est, deadline, nil)

	require.NotNil(t, info.Slip)
	assert.Equal(t, -3, *info.Slip)
}

func TestProjectSlip_OnTimeIsZero(t *testing.T) {
	cfg := testConfig()
	day := date(2025, 3, 12)
	est := Estimate{Completion: day}

	info := ProjectSlip(cfg, est, timePtr(day), nil)

	require.NotNil(t, info.Slip)
	assert.Equal(t, 0, *info.Slip)
}

func TestProjectSlip_FallsBackToPriorityWindow(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 12)}
	window := &PriorityWindow{End: date(2025, 3, 14)}

	info := ProjectSlip(cfg, est, nil, window)

	require.NotNil(t, info.Slip)
	assert.Equal(t, 2, *info.Slip)
}

func TestProjectSlip_DeadlineWinsOverWindow(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 12)}
	window := &PriorityWindow{End: date(2025, 3, 14)}
	deadline := timePtr(date(2025, 3, 11))

	info := ProjectSlip(cfg, est, deadline, window)

	require.NotNil(t, info.Slip)
	assert.Equal(t, -1, *info.Slip)
}

func TestProjectSlip_NoReferenceYieldsNilSlip(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 14), DurationDays: 4}

	info := ProjectSlip(cfg, est, nil, nil)

	assert.Nil(t, info.Slip)
	assert.Equal(t, 4, info.DurationDays)
}

func TestProjectSlip_UnschedulableHasNoSlip(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Unschedulable: true}

	info := ProjectSlip(cfg, est, timePtr(date(2025, 3, 14)), nil)

	assert.Nil(t, info.Slip)
}

func TestProjectSlip_UnschedulableWindowIgnored(t *testing.T) {
	cfg := testConfig()
	est := Estimate{Completion: date(2025, 3, 12)}
	window := &PriorityWindow{Unschedulable: true}

	info := ProjectSlip(cfg, est, nil, window)

	assert.Nil(t, info.Slip)
}

func TestBuildSlipReport_EmptyScope(t *testing.T) {
	report := BuildSlipReport(nil)

	assert.Equal(t, SlipReport{}, report)
}

func TestBuildSlipReport_Buckets(t *testing.T) {
	report := BuildSlipReport([]*int{intPtr(3), intPtr(-3), intPtr(0), nil})

	assert.Equal(t, 4, report.TotalProjects)
	assert.Equal(t, 1, report.DelayedProjects)
	assert.Equal(t, 1, report.OnTimeProjects)
	assert.Equal(t, 1, report.AheadProjects)
	assert.Equal(t, 0, report.AverageSlip)
}

func TestBuildSlipReport_AverageRoundsToNearestWorkday(t *testing.T) {
	report := BuildSlipReport([]*int{intPtr(2), intPtr(3)})

	assert.Equal(t, 3, report.AverageSlip) // 2.5 rounds up
}

func TestBuildSlipReport_UnresolvedExcludedFromAverage(t *testing.T) {
	report := BuildSlipReport([]*int{intPtr(-4), nil, nil})

	assert.Equal(t, 3, report.TotalProjects)
	assert.Equal(t, -4, report.AverageSlip)
	assert.Equal(t, 1, report.DelayedProjects)
}
