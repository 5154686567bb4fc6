// Package scheduler implements the delivery estimation engine: remaining-work
// calculation, single-project completion estimates (with optional workflow
// dependencies), priority sequencing of a whole scope through shared team
// capacity, and slip/reserve reporting.
package scheduler

import "math"

// percentHeuristicFactor disambiguates the historically overloaded done
// value: anything above plannedMandays*1.5 is read as a percentage (a proper
// percentage is bounded by 100, a mandays count above 1.5x plan legitimately
// occurs only on blown estimates). The threshold is load-bearing for
// compatibility with existing data; do not tune it.
const percentHeuristicFactor = 1.5

// RemainingMandays converts a planned/done pair into remaining mandays.
// The done value may hold either a 0-100 percentage or already-spent mandays;
// asPercent reports which branch fired so callers can surface the guess.
// Malformed input (NaN, negatives) degrades to zero contribution.
func RemainingMandays(planned, done float64) (remaining float64, asPercent bool) {
	planned = sanitize(planned)
	done = sanitize(done)
	if planned <= 0 {
		return 0, false
	}

	var spent float64
	if done > planned*percentHeuristicFactor {
		asPercent = true
		pct := math.Min(math.Max(done, 0), 100)
		spent = pct / 100 * planned
	} else {
		spent = done
	}

	remaining = planned - spent
	if remaining < 0 {
		remaining = 0
	}
	return remaining, asPercent
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
