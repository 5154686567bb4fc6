package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/martinhruska/scopeburn/internal/domain"
)

var noHolidays = domain.ScopeSettings{IncludeHolidays: false}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkday_WeekendsAlwaysExcluded(t *testing.T) {
	c := New()
	sat := date(2025, 3, 15)
	sun := date(2025, 3, 16)

	for _, s := range []domain.ScopeSettings{
		{IncludeHolidays: false},
		{IncludeHolidays: true, Country: "US"},
		{IncludeHolidays: true, Country: "CZ"},
	} {
		assert.False(t, c.IsWorkday(sat, s))
		assert.False(t, c.IsWorkday(sun, s))
	}
}

func TestIsWorkday_PublicHoliday(t *testing.T) {
	c := New()
	// July 4, 2025 is a Friday.
	independenceDay := date(2025, 7, 4)

	us := domain.ScopeSettings{IncludeHolidays: true, Country: "US"}
	assert.False(t, c.IsWorkday(independenceDay, us))
	assert.True(t, c.IsWorkday(independenceDay, noHolidays))
}

func TestIsWorkday_UnknownCountryFallsBackToNoHolidays(t *testing.T) {
	c := New()
	s := domain.ScopeSettings{IncludeHolidays: true, Country: "ZZ"}
	// A Friday that is a holiday somewhere but a plain weekday under ZZ.
	assert.True(t, c.IsWorkday(date(2025, 7, 4), s))
	assert.False(t, c.IsWorkday(date(2025, 7, 5), s)) // Saturday stays excluded
}

func TestIsWorkday_UnknownSubdivisionFallsBackToCountry(t *testing.T) {
	c := New()
	s := domain.ScopeSettings{IncludeHolidays: true, Country: "US", Subdivision: "XX"}
	assert.False(t, c.IsWorkday(date(2025, 7, 4), s))
}

func TestAddWorkdays_SkipsWeekend(t *testing.T) {
	c := New()
	// Friday + 1 workday = Monday.
	fri := date(2025, 3, 14)
	assert.Equal(t, date(2025, 3, 17), c.AddWorkdays(fri, 1, noHolidays))
	// Friday + 5 workdays = next Friday.
	assert.Equal(t, date(2025, 3, 21), c.AddWorkdays(fri, 5, noHolidays))
}

func TestAddWorkdays_ZeroReturnsSameDay(t *testing.T) {
	c := New()
	sat := date(2025, 3, 15)
	assert.Equal(t, sat, c.AddWorkdays(sat, 0, noHolidays))
}

func TestAddWorkdays_Additivity(t *testing.T) {
	c := New()
	s := domain.ScopeSettings{IncludeHolidays: true, Country: "US"}
	d := date(2025, 6, 30)
	for _, pair := range [][2]int{{1, 2}, {3, 7}, {0, 4}, {10, 10}} {
		a, b := pair[0], pair[1]
		chained := c.AddWorkdays(c.AddWorkdays(d, a, s), b, s)
		direct := c.AddWorkdays(d, a+b, s)
		assert.Equal(t, direct, chained, "a=%d b=%d", a, b)
	}
}

func TestAddWorkdays_Negative(t *testing.T) {
	c := New()
	// Monday - 1 workday = Friday.
	mon := date(2025, 3, 17)
	assert.Equal(t, date(2025, 3, 14), c.AddWorkdays(mon, -1, noHolidays))
}

func TestNextWorkday(t *testing.T) {
	c := New()
	assert.Equal(t, date(2025, 3, 17), c.NextWorkday(date(2025, 3, 15), noHolidays))
	// A workday maps to itself.
	assert.Equal(t, date(2025, 3, 17), c.NextWorkday(date(2025, 3, 17), noHolidays))
}

func TestWorkdaysCount_InclusiveInterval(t *testing.T) {
	c := New()
	// Mon .. Fri = 5 workdays.
	assert.Equal(t, 5, c.WorkdaysCount(date(2025, 3, 10), date(2025, 3, 14), noHolidays))
	// Sat .. Sun = 0.
	assert.Equal(t, 0, c.WorkdaysCount(date(2025, 3, 15), date(2025, 3, 16), noHolidays))
	// Reversed interval = 0.
	assert.Equal(t, 0, c.WorkdaysCount(date(2025, 3, 14), date(2025, 3, 10), noHolidays))
}

func TestWorkdaysDiff_SignAndExclusion(t *testing.T) {
	c := New()
	mon := date(2025, 3, 10)
	fri := date(2025, 3, 14)

	assert.Equal(t, 0, c.WorkdaysDiff(mon, mon, noHolidays))
	assert.Equal(t, 4, c.WorkdaysDiff(mon, fri, noHolidays))
	assert.Equal(t, -4, c.WorkdaysDiff(fri, mon, noHolidays))
	// Friday -> Monday crosses only the weekend: one workday.
	assert.Equal(t, 1, c.WorkdaysDiff(fri, date(2025, 3, 17), noHolidays))
}

func TestCalendarCache_ReusedAcrossCalls(t *testing.T) {
	c := New()
	s := domain.ScopeSettings{IncludeHolidays: true, Country: "DE", Subdivision: "BY"}
	_ = c.IsWorkday(date(2025, 1, 2), s)
	_ = c.IsWorkday(date(2025, 1, 3), s)

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Len(t, c.cache, 1)
}
