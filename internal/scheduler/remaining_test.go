package scheduler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingMandays_DoneAsMandays(t *testing.T) {
	// 15 <= 20*1.5, so done is read as spent mandays.
	remaining, asPercent := RemainingMandays(20, 15)
	assert.Equal(t, 5.0, remaining)
	assert.False(t, asPercent)
}

func TestRemainingMandays_DoneAsPercent(t *testing.T) {
	// 80 > 20*1.5, so done is read as a percentage.
	remaining, asPercent := RemainingMandays(20, 80)
	assert.Equal(t, 4.0, remaining)
	assert.True(t, asPercent)
}

func TestRemainingMandays_PercentClampedTo100(t *testing.T) {
	remaining, asPercent := RemainingMandays(20, 150)
	assert.Equal(t, 0.0, remaining)
	assert.True(t, asPercent)
}

func TestRemainingMandays_ThresholdBoundary(t *testing.T) {
	// Exactly 1.5x plan stays on the mandays branch.
	remaining, asPercent := RemainingMandays(20, 30)
	assert.Equal(t, 0.0, remaining) // overspent, clamped at zero
	assert.False(t, asPercent)
}

func TestRemainingMandays_ZeroPlan(t *testing.T) {
	remaining, asPercent := RemainingMandays(0, 50)
	assert.Equal(t, 0.0, remaining)
	assert.False(t, asPercent)
}

func TestRemainingMandays_MalformedInputDegradesToZero(t *testing.T) {
	remaining, _ := RemainingMandays(10, -5)
	assert.Equal(t, 10.0, remaining)

	remaining, _ = RemainingMandays(math.NaN(), 5)
	assert.Equal(t, 0.0, remaining)

	remaining, _ = RemainingMandays(10, math.Inf(1))
	assert.Equal(t, 10.0, remaining)
}
