package yearinfo

import (
	"fmt"
	"strings"
	"time"
)

// Weekday numbers the days of the week starting at Monday, as RFC 5545
// WKST and BYDAY values do.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of distinct Weekday values.
const DaysPerWeek = 7

var weekdayCodes = [DaysPerWeek]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// Valid reports whether w is one of Monday..Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// String returns the two letter iCalendar code of w.
func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayCodes[w]
}

// Time converts w to the standard library representation.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(mod(int(w)+1, DaysPerWeek))
}

// WeekdayFromTime converts a standard library weekday.
func WeekdayFromTime(d time.Weekday) Weekday {
	return Weekday(mod(int(d)-1, DaysPerWeek))
}

// ParseWeekday parses a two letter iCalendar weekday code such as "MO".
func ParseWeekday(code string) (Weekday, error) {
	uc := strings.ToUpper(strings.TrimSpace(code))
	for i, c := range weekdayCodes {
		if c == uc {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", code)
}

// mod is the modulus with the sign of the divisor.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
