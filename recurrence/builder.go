// Package recurrence provides year contexts to recurrence enumerators: a
// Builder that caches and logs yearinfo contexts, builds ranges of years
// concurrently, and derives the configuration from iCalendar components.
package recurrence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"
	"golang.org/x/sync/errgroup"

	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

// ErrInvalidRange is returned by BuildRange for empty or oversized ranges.
var ErrInvalidRange = errors.New("invalid year range")

// Builder provides year contexts, one per calendar year visited while
// generating occurrences
type Builder struct {
	cache    *ContextCache
	config   BuilderConfig
	calendar yearinfo.DateUtility
	logger   *slog.Logger
}

// NewBuilder creates a new builder with DefaultBuilderConfig
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig)
}

// YearContext returns the context of year for cfg, from the cache when
// possible. Errors wrap a *yearinfo.ConfigurationError.
func (b *Builder) YearContext(year int, cfg yearinfo.Config) (*yearinfo.Context, error) {
	if b.cache != nil {
		if yc, ok := b.cache.Get(year, cfg); ok {
			b.logger.Debug("year context cache hit", "year", year, "key", cfg.Key(year))
			return yc, nil
		}
	}

	// Built without holding any lock, concurrent builds of the same key are
	// resolved by the cache keeping the first one stored.
	yc, err := yearinfo.Build(year, cfg, b.calendar)
	if err != nil {
		b.logger.Error("failed to build year context", "year", year, "error", err)
		return nil, fmt.Errorf("failed to build year context for %d: %w", year, err)
	}

	stored := true
	if b.cache != nil {
		yc, stored = b.cache.Add(year, cfg, yc)
	}
	b.logger.Debug("year context built",
		"year", year,
		"weekStart", cfg.WeekStart,
		"weekNumbers", cfg.WeekNumbers,
		"stored", stored)
	return yc, nil
}

// BuildRange returns the contexts of every year in years, in order. Years are
// built concurrently, bounded by BuilderConfig.Concurrency. The first error
// cancels the remaining work.
func (b *Builder) BuildRange(ctx context.Context, years YearRange, cfg yearinfo.Config) ([]*yearinfo.Context, error) {
	n := years.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, years)
	}
	if b.config.MaxRangeYears > 0 && n > b.config.MaxRangeYears {
		return nil, fmt.Errorf("%w: %v spans %d years, limit is %d", ErrInvalidRange, years, n, b.config.MaxRangeYears)
	}

	contexts := make([]*yearinfo.Context, n)
	g, ctx := errgroup.WithContext(ctx)
	if b.config.Concurrency > 0 {
		g.SetLimit(b.config.Concurrency)
	}
	for year := range years.Years() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			yc, err := b.YearContext(year, cfg)
			if err != nil {
				return err
			}
			contexts[year-years.From] = yc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("year range built", "range", years.String(), "years", n)
	return contexts, nil
}

// ComponentContexts returns the contexts of count consecutive years starting
// with the year of comp's DTSTART, configured from comp's RRULE. It returns
// nil without error for components that do not recur.
func (b *Builder) ComponentContexts(ctx context.Context, comp *ical.Component, count int) ([]*yearinfo.Context, error) {
	cfg, recurs, err := ConfigFromComponent(comp)
	if err != nil {
		return nil, err
	}
	if !recurs {
		return nil, nil
	}
	start, ok := StartYear(comp)
	if !ok {
		return nil, fmt.Errorf("recurring %s has no DTSTART", comp.Name)
	}
	return b.BuildRange(ctx, YearRange{From: start, To: start + count - 1}, cfg)
}

// Stats returns the cache statistics, zero when caching is disabled
func (b *Builder) Stats() CacheStats {
	if b.cache == nil {
		return CacheStats{}
	}
	return b.cache.Stats()
}

// Close releases the cache
func (b *Builder) Close() {
	if b.cache != nil {
		b.cache.Close()
	}
}
