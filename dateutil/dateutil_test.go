package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGregorian_IsLeapYear(t *testing.T) {
	var g Gregorian
	for year := MinYear; year <= 2500; year++ {
		want := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		assert.Equal(t, want, g.IsLeapYear(year), "year %d", year)
	}
}

func TestGregorian_WeekdayOfJanuaryFirst(t *testing.T) {
	tests := []struct {
		year int
		want time.Weekday
	}{
		{1, time.Monday},
		{1970, time.Thursday},
		{2000, time.Saturday},
		{2021, time.Friday},
		{2024, time.Monday},
		{2026, time.Thursday},
	}

	var g Gregorian
	for _, tt := range tests {
		got, err := g.WeekdayOfJanuaryFirst(tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "year %d", tt.year)
	}
}

func TestGregorian_DaysBeforeYearStart(t *testing.T) {
	var g Gregorian

	got, err := g.DaysBeforeYearStart(1)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = g.DaysBeforeYearStart(1970)
	require.NoError(t, err)
	assert.Equal(t, unixEpochDays, got)

	got, err = g.DaysBeforeYearStart(0)
	require.NoError(t, err)
	assert.Equal(t, -366, got)

	// Consecutive years differ by the length of the earlier one.
	for year := MinYear; year < 2200; year++ {
		a, err := g.DaysBeforeYearStart(year)
		require.NoError(t, err)
		b, err := g.DaysBeforeYearStart(year + 1)
		require.NoError(t, err)
		length := 365
		if g.IsLeapYear(year) {
			length = 366
		}
		assert.Equal(t, length, b-a, "year %d", year)
	}
}

func TestGregorian_OutOfRange(t *testing.T) {
	var g Gregorian
	for _, year := range []int{MinYear - 1, MaxYear + 1, -400} {
		_, err := g.WeekdayOfJanuaryFirst(year)
		assert.ErrorIs(t, err, ErrYearOutOfRange)
		_, err = g.DaysBeforeYearStart(year)
		assert.ErrorIs(t, err, ErrYearOutOfRange)
	}
}
