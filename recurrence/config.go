package recurrence

import (
	"log/slog"
	"time"

	"github.com/cyp0633/libcaldora-yearmask/dateutil"
	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

// BuilderConfig holds configuration options for the year context builder
type BuilderConfig struct {
	// Cache configuration
	CacheEnabled bool
	CacheConfig  CacheConfig

	// Performance tuning
	Concurrency   int // Maximum number of years BuildRange builds in parallel (0 = unlimited)
	MaxRangeYears int // Largest year range BuildRange accepts (0 = unlimited)

	// Calendar supplies the date primitives, nil uses dateutil.Gregorian
	Calendar yearinfo.DateUtility
	// Logger receives build and cache events, nil uses slog.Default()
	Logger *slog.Logger
}

// DefaultBuilderConfig provides sensible defaults for production use
var DefaultBuilderConfig = BuilderConfig{
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,

	Concurrency:   4,
	MaxRangeYears: 200,
}

// HighPerformanceConfig is optimized for high-traffic scenarios
var HighPerformanceConfig = BuilderConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute, // Longer cache TTL
		MaxEntries:      5000,             // More cache entries
		CleanupInterval: 10 * time.Minute, // Less frequent cleanup
	},

	Concurrency:   16,
	MaxRangeYears: 400,
}

// LowMemoryConfig is optimized for memory-constrained environments
var LowMemoryConfig = BuilderConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             5 * time.Minute, // Shorter cache TTL
		MaxEntries:      100,             // Fewer cache entries, each holds about 3KB of masks
		CleanupInterval: 2 * time.Minute, // More frequent cleanup
	},

	Concurrency:   1,
	MaxRangeYears: 50,
}

// DisabledCacheConfig turns off caching entirely
var DisabledCacheConfig = BuilderConfig{
	CacheEnabled: false,
	CacheConfig:  CacheConfig{}, // Not used

	Concurrency:   4,
	MaxRangeYears: 200,
}

// NewBuilderWithConfig creates a new year context builder with custom configuration
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	var cache *ContextCache
	if config.CacheEnabled {
		cache = NewContextCache(config.CacheConfig)
	}

	calendar := config.Calendar
	if calendar == nil {
		calendar = dateutil.Gregorian{}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		cache:    cache,
		config:   config,
		calendar: calendar,
		logger:   logger,
	}
}
