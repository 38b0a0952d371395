package recurrence

import (
	"fmt"
	"iter"
)

// YearRange is an inclusive range of calendar years
type YearRange struct {
	From int // First year of the range
	To   int // Last year of the range, inclusive
}

// Len returns the number of years in the range, 0 if To precedes From
func (r YearRange) Len() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// Years iterates over the years of the range in ascending order
func (r YearRange) Years() iter.Seq[int] {
	return func(yield func(int) bool) {
		for year := r.From; year <= r.To; year++ {
			if !yield(year) {
				return
			}
		}
	}
}

func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}
