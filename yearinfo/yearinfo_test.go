package yearinfo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	weeks := []int{1, -1}
	c := mustBuild(t, 2026, Config{WeekStart: Sunday, WeekNumbers: weeks})

	assert.Equal(t, 2026, c.Facts.Year)
	assert.Equal(t, Thursday, c.Facts.FirstWeekday)
	assert.Equal(t, Sunday, c.Config.WeekStart)

	// The context keeps its own copy of the configuration.
	weeks[0] = 20
	assert.Equal(t, []int{1, -1}, c.Config.WeekNumbers)
}

func TestContext_DayOfYear(t *testing.T) {
	c := mustBuild(t, 2024, Config{})

	d, ok := c.DayOfYear(time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 31+29, d)

	d, ok = c.DayOfYear(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 365, d)

	_, ok = c.DayOfYear(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	// Dates are read in UTC.
	tz := time.FixedZone("UTC+10", 10*60*60)
	_, ok = c.DayOfYear(time.Date(2025, time.January, 1, 5, 0, 0, 0, tz))
	assert.True(t, ok)
}

func TestContext_Matches(t *testing.T) {
	c := mustBuild(t, 2021, Config{WeekStart: Monday, WeekNumbers: []int{1}})
	assert.False(t, c.Matches(-1))
	assert.False(t, c.Matches(2))
	assert.True(t, c.Matches(3))
	assert.True(t, c.Matches(9))
	assert.False(t, c.Matches(10))
	assert.False(t, c.Matches(int(c.Facts.Length)))
}

func TestBuild_Concurrent(t *testing.T) {
	cfg := Config{WeekStart: Monday, WeekNumbers: []int{1, 26, -1}}
	want := mustBuild(t, 2030, cfg)

	var wg sync.WaitGroup
	results := make([]*Context, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Build(2030, cfg, gregorian)
			if err == nil {
				results[i] = c
			}
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		require.NotNil(t, c)
		assert.Equal(t, want, c)
	}
}

func TestConfig_Key(t *testing.T) {
	a := Config{WeekStart: Monday, WeekNumbers: []int{1, -1, 1}}
	b := Config{WeekStart: Monday, WeekNumbers: []int{-1, 1}}
	c := Config{WeekStart: Sunday, WeekNumbers: []int{-1, 1}}

	assert.Equal(t, "2024/MO/-1,1", a.Key(2024))
	assert.Equal(t, a.Key(2024), b.Key(2024))
	assert.NotEqual(t, a.Key(2024), c.Key(2024))
	assert.NotEqual(t, a.Key(2024), a.Key(2025))
	assert.Equal(t, "2024/SU/", Config{WeekStart: Sunday}.Key(2024))

	// Key does not reorder the caller's slice.
	assert.Equal(t, []int{1, -1, 1}, a.WeekNumbers)
}
