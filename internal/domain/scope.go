package domain

// ScopeSettings is the per-scope calendar configuration: whether public
// holidays count as non-working days, and which national calendar applies.
// Country is an ISO 3166-1 alpha-2 code; Subdivision an optional region code
// (e.g. "BY" for Bavaria). Unknown codes degrade to "no holidays observed".
type ScopeSettings struct {
	IncludeHolidays bool
	Country         string
	Subdivision     string
}

// DefaultScopeSettings is used until the scope has been configured.
func DefaultScopeSettings() ScopeSettings {
	return ScopeSettings{IncludeHolidays: true, Country: "CZ"}
}
