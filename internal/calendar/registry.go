package calendar

import (
	"strings"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/sk"
	"github.com/rickar/cal/v2/us"
)

// holidayRegistry maps ISO country codes to their public holiday sets.
// Subdivision-specific sets would live here under "CC-SUB" keys.
var holidayRegistry = map[string][]*cal.Holiday{
	"AT": at.Holidays,
	"CZ": cz.Holidays,
	"DE": de.Holidays,
	"FR": fr.Holidays,
	"GB": gb.Holidays,
	"PL": pl.Holidays,
	"SK": sk.Holidays,
	"US": us.Holidays,
}

// lookupHolidays resolves a normalized "CC" or "CC-SUB" key. A subdivision
// without a dedicated entry falls back to its country set; an unknown country
// falls back to no holidays at all. Lookups never fail.
func lookupHolidays(key string) []*cal.Holiday {
	if hs, ok := holidayRegistry[key]; ok {
		return hs
	}
	if i := strings.IndexByte(key, '-'); i > 0 {
		if hs, ok := holidayRegistry[key[:i]]; ok {
			return hs
		}
	}
	return nil
}
