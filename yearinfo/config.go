package yearinfo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Config is the part of a recurrence rule that the per-year masks depend on.
type Config struct {
	// WeekStart is the first day of each week for week numbering (WKST).
	WeekStart Weekday
	// WeekNumbers are the requested week numbers (BYWEEKNO), each in
	// -53..-1 or 1..53. Empty means week numbers do not constrain the rule.
	WeekNumbers []int
}

// HasWeekNumbers reports whether the configuration constrains week numbers.
func (c Config) HasWeekNumbers() bool {
	return len(c.WeekNumbers) > 0
}

// Key identifies the masks built for year under c. Configurations that only
// differ in the order or repetition of week numbers share a key.
func (c Config) Key(year int) string {
	weeks := slices.Clone(c.WeekNumbers)
	slices.Sort(weeks)
	weeks = slices.Compact(weeks)

	var out strings.Builder
	fmt.Fprintf(&out, "%d/%s/", year, Weekday(mod(int(c.WeekStart), DaysPerWeek)))
	for i, w := range weeks {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(strconv.Itoa(w))
	}
	return out.String()
}
