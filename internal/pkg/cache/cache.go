// Package cache provides a read-through TTL cache for org-scoped directory
// lookups. Invalidation is wholesale: any write to org data clears the whole
// cache rather than evicting individual keys. Races between concurrent
// readers are tolerated; a stampede only means redundant store queries.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 1e6
	defaultMaxCost     = 1e7
	defaultBufferItems = 64
	DefaultTTL         = 5 * time.Minute
)

type OrgCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New creates an OrgCache with the given TTL; a non-positive ttl falls back
// to DefaultTTL.
func New(ttl time.Duration) (*OrgCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &OrgCache{cache: c, ttl: ttl}, nil
}

func (c *OrgCache) key(orgID, name string) string {
	return orgID + ":" + name
}

func (c *OrgCache) Get(orgID, name string) (interface{}, bool) {
	return c.cache.Get(c.key(orgID, name))
}

func (c *OrgCache) Set(orgID, name string, value interface{}) {
	c.cache.SetWithTTL(c.key(orgID, name), value, 1, c.ttl)
}

// Invalidate drops every cached entry. Called on any write path; per-key
// eviction is deliberately not offered.
func (c *OrgCache) Invalidate() {
	c.cache.Clear()
}

// Wait blocks until pending writes are visible. Only needed in tests;
// ristretto applies Set asynchronously.
func (c *OrgCache) Wait() {
	c.cache.Wait()
}

func (c *OrgCache) Close() {
	c.cache.Close()
}
