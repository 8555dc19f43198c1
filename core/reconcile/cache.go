package reconcile

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedReport is a report plus the time it was built.
type cachedReport struct {
	report *Report
	built  time.Time
}

// ReportCache holds recently built reports keyed by date range.
type ReportCache struct {
	ttl    time.Duration
	mu     sync.RWMutex
	caches map[string]cachedReport
	sf     singleflight.Group
	now    func() time.Time
}

// NewReportCache creates a cache with the given TTL. A zero TTL disables caching,
// but concurrent builds for the same key are still collapsed into one.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		ttl:    ttl,
		caches: make(map[string]cachedReport),
		now:    time.Now,
	}
}

// Enabled reports whether built reports are retained.
func (c *ReportCache) Enabled() bool {
	return c.ttl > 0
}

func (c *ReportCache) lookup(key string) (*Report, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	entry, exists := c.caches[key]
	c.mu.RUnlock()
	if !exists || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.report, true
}

// GetOrBuild returns a fresh cached report for the key or builds a new one.
// Uses singleflight to prevent stampedes.
func (c *ReportCache) GetOrBuild(key string, build func() (*Report, error)) (*Report, error) {
	if report, ok := c.lookup(key); ok {
		return report, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if report, ok := c.lookup(key); ok {
			return report, nil
		}

		report, err := build()
		if err != nil {
			return nil, err
		}

		if c.Enabled() {
			c.mu.Lock()
			c.caches[key] = cachedReport{report: report, built: c.now()}
			c.mu.Unlock()
		}
		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

// Invalidate removes the report cached for the key.
func (c *ReportCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.caches, key)
	c.mu.Unlock()
}

// Purge removes every cached report.
func (c *ReportCache) Purge() {
	c.mu.Lock()
	c.caches = make(map[string]cachedReport)
	c.mu.Unlock()
}
