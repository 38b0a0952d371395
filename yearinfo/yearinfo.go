// Package yearinfo computes, for one calendar year and a recurrence
// configuration, the dense per-day masks a recurrence enumerator uses to
// test month, day-of-month, weekday and week number predicates in constant
// time.
//
// Week numbers follow ISO 8601 generalised to any week-start day: week 1 is
// the first week with at least four days in the year, negative numbers count
// back from the last week, and weeks straddling a year boundary are patched
// into both years.
//
// A Context is immutable once built and may be shared between goroutines.
// Contexts do not cache themselves; see the recurrence package for a cache
// keyed by Config.Key.
package yearinfo

import (
	"slices"
	"time"
)

// Context bundles the facts and masks of one year for one configuration.
type Context struct {
	Facts  Facts
	Masks  Masks
	Config Config
}

// Build returns the Context of year for cfg using cal for the calendar
// primitives. The only error it returns is a *ConfigurationError.
func Build(year int, cfg Config, cal DateUtility) (*Context, error) {
	facts, err := NewFacts(year, cal)
	if err != nil {
		return nil, err
	}
	return &Context{
		Facts:  facts,
		Masks:  NewMasks(facts, cfg),
		Config: Config{WeekStart: cfg.WeekStart, WeekNumbers: slices.Clone(cfg.WeekNumbers)},
	}, nil
}

// DayOfYear returns the day offset of t's date within the context's year,
// t being interpreted in UTC. It returns false for dates in other years.
func (c *Context) DayOfYear(t time.Time) (int, bool) {
	t = t.UTC()
	if t.Year() != c.Facts.Year {
		return 0, false
	}
	return t.YearDay() - 1, true
}

// Matches reports whether the day at offset satisfies the week number
// constraint of the configuration. Offsets outside the year never match.
func (c *Context) Matches(offset int) bool {
	if offset < 0 || offset >= int(c.Facts.Length) {
		return false
	}
	return c.Masks.InWeekNumbers(offset)
}
