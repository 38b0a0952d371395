package recurrence

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

// cacheEntry represents a cached year context
type cacheEntry struct {
	context    *yearinfo.Context
	expiresAt  time.Time
	accessedAt time.Time
}

// ContextCache caches year contexts keyed by year, week start and requested
// week numbers. Contexts are computed outside of the cache; the first one
// stored for a key wins and later ones are discarded.
type ContextCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheConfig holds configuration for the year context cache
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid (0 = forever)
	MaxEntries      int           // Maximum number of entries before cleanup (0 = unlimited)
	CleanupInterval time.Duration // How often to run cleanup (0 = only on insert)
}

// DefaultCacheConfig provides sensible defaults for year context caching
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute, // Cache contexts for 15 minutes
	MaxEntries:      1000,             // Keep up to 1000 contexts
	CleanupInterval: 5 * time.Minute,  // Cleanup every 5 minutes
}

// NewContextCache creates a new year context cache with the given configuration
func NewContextCache(config CacheConfig) *ContextCache {
	cache := &ContextCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}

	// Start cleanup goroutine
	if cache.cleanupInterval > 0 {
		go cache.cleanupLoop()
	}

	return cache
}

func (c *ContextCache) expired(entry *cacheEntry, now time.Time) bool {
	return c.ttl > 0 && now.After(entry.expiresAt)
}

// Get retrieves a cached context if it exists and hasn't expired
func (c *ContextCache) Get(year int, cfg yearinfo.Config) (*yearinfo.Context, bool) {
	key := cfg.Key(year)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	// Check if entry has expired
	now := time.Now()
	if c.expired(entry, now) {
		// Entry expired, remove it unless it was replaced meanwhile
		c.mutex.Lock()
		if c.entries[key] == entry {
			delete(c.entries, key)
		}
		c.mutex.Unlock()
		c.misses.Add(1)
		return nil, false
	}

	// Update access time
	c.mutex.Lock()
	entry.accessedAt = now
	c.mutex.Unlock()

	c.hits.Add(1)
	return entry.context, true
}

// Add stores yc unless a live context is already cached for the same key.
// It returns the cached context and whether yc was the one stored.
func (c *ContextCache) Add(year int, cfg yearinfo.Config, yc *yearinfo.Context) (*yearinfo.Context, bool) {
	key := cfg.Key(year)
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry, exists := c.entries[key]; exists && !c.expired(entry, now) {
		entry.accessedAt = now
		return entry.context, false
	}

	c.entries[key] = &cacheEntry{
		context:    yc,
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}

	// If we're over the limit, trigger cleanup
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.cleanup()
	}
	return yc, true
}

// cleanup removes expired entries and oldest entries if over limit.
// The caller must hold the write lock.
func (c *ContextCache) cleanup() {
	now := time.Now()

	// Remove expired entries
	for key, entry := range c.entries {
		if c.expired(entry, now) {
			delete(c.entries, key)
		}
	}

	// If still over limit, remove least recently accessed entries
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		type keyAccess struct {
			key        string
			accessedAt time.Time
		}

		keyAccessList := make([]keyAccess, 0, len(c.entries))
		for key, entry := range c.entries {
			keyAccessList = append(keyAccessList, keyAccess{
				key:        key,
				accessedAt: entry.accessedAt,
			})
		}

		// Sort by access time (oldest first)
		slices.SortFunc(keyAccessList, func(a, b keyAccess) int {
			return a.accessedAt.Compare(b.accessedAt)
		})

		// Remove oldest entries to get under the limit
		entriesToRemove := len(c.entries) - c.maxEntries
		for i := 0; i < entriesToRemove && i < len(keyAccessList); i++ {
			delete(c.entries, keyAccessList[i].key)
		}
	}
}

// cleanupLoop runs periodic cleanup
func (c *ContextCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache. It is safe to call
// more than once.
func (c *ContextCache) Close() {
	c.closeOnce.Do(func() {
		close(c.stopCleanup)
	})
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// Stats returns cache statistics
func (c *ContextCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entryCount := len(c.entries)
	expiredCount := 0
	now := time.Now()

	for _, entry := range c.entries {
		if c.expired(entry, now) {
			expiredCount++
		}
	}

	return CacheStats{
		TotalEntries:   entryCount,
		ExpiredEntries: expiredCount,
		ActiveEntries:  entryCount - expiredCount,
		Hits:           c.hits.Load(),
		Misses:         c.misses.Load(),
	}
}

// CacheStats provides information about cache performance
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
	Hits           int64
	Misses         int64
}
