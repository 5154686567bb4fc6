// Package calendar answers workday questions for the estimation engine:
// whether a date is a working day under a scope's holiday configuration, and
// workday arithmetic (advance, count, signed diff) built on top of that.
package calendar

import (
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// iterationCap bounds the internal day-stepping loops. Sequencing a scope
// never legitimately walks more than a few years of calendar; hitting the cap
// means a caller passed garbage (e.g. a year-70k date) and we stop advancing.
const iterationCap = 150000

// Calendar is the workday oracle. It owns a cache of business calendars keyed
// by (country, subdivision) because holiday calendars are expensive to build
// and are consulted in tight sequencing loops. The cache is safe for
// concurrent forecast invocations.
type Calendar struct {
	mu    sync.RWMutex
	cache map[string]*cal.BusinessCalendar
}

func New() *Calendar {
	return &Calendar{cache: make(map[string]*cal.BusinessCalendar)}
}

// business returns the cached business calendar for the settings, building it
// on first use. With holidays disabled every scope shares the plain Mon-Fri
// calendar under the empty key.
func (c *Calendar) business(s domain.ScopeSettings) *cal.BusinessCalendar {
	key := ""
	if s.IncludeHolidays {
		key = strings.ToUpper(strings.TrimSpace(s.Country))
		if sub := strings.ToUpper(strings.TrimSpace(s.Subdivision)); sub != "" {
			key += "-" + sub
		}
	}

	c.mu.RLock()
	bc, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return bc
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if bc, ok := c.cache[key]; ok {
		return bc
	}

	bc = cal.NewBusinessCalendar()
	if key != "" {
		bc.AddHoliday(lookupHolidays(key)...)
	}
	c.cache[key] = bc
	return bc
}

// IsWorkday reports whether the date is a working day: Monday-Friday and,
// when the scope observes public holidays, not a holiday of the configured
// country/subdivision.
func (c *Calendar) IsWorkday(day time.Time, s domain.ScopeSettings) bool {
	return c.business(s).IsWorkday(day)
}

// AddWorkdays advances day by exactly n workdays, skipping weekends and
// holidays. The starting date itself is never counted; n = 0 returns the day
// unchanged. Negative n walks backwards.
func (c *Calendar) AddWorkdays(day time.Time, n int, s domain.ScopeSettings) time.Time {
	if n == 0 {
		return day
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	bc := c.business(s)
	current := day
	for i := 0; n > 0 && i < iterationCap; i++ {
		current = current.AddDate(0, 0, step)
		if bc.IsWorkday(current) {
			n--
		}
	}
	return current
}

// NextWorkday returns day itself when it is a workday, otherwise the first
// workday after it.
func (c *Calendar) NextWorkday(day time.Time, s domain.ScopeSettings) time.Time {
	bc := c.business(s)
	current := day
	for i := 0; !bc.IsWorkday(current) && i < iterationCap; i++ {
		current = current.AddDate(0, 0, 1)
	}
	return current
}

// WorkdaysCount counts workdays in the inclusive interval [start, end].
// Returns 0 when end precedes start.
func (c *Calendar) WorkdaysCount(start, end time.Time, s domain.ScopeSettings) int {
	startDay := truncateDay(start)
	endDay := truncateDay(end)
	if endDay.Before(startDay) {
		return 0
	}
	bc := c.business(s)
	count := 0
	for d, i := startDay, 0; !d.After(endDay) && i < iterationCap; d, i = d.AddDate(0, 0, 1), i+1 {
		if bc.IsWorkday(d) {
			count++
		}
	}
	return count
}

// WorkdaysDiff returns the signed workday distance from start to end,
// excluding the start day itself: 0 when both fall on the same calendar day,
// positive when end is later, negative when earlier.
func (c *Calendar) WorkdaysDiff(start, end time.Time, s domain.ScopeSettings) int {
	startDay := truncateDay(start)
	endDay := truncateDay(end)
	if startDay.Equal(endDay) {
		return 0
	}
	if endDay.Before(startDay) {
		return -c.WorkdaysDiff(end, start, s)
	}
	// Count workdays in (start, end].
	return c.WorkdaysCount(startDay.AddDate(0, 0, 1), endDay, s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
