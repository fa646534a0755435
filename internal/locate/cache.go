package locate

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// pathCache remembers resolved on-disk paths keyed by their case-folded game path.
type pathCache struct {
	lru *expirable.LRU[string, string]
}

// newPathCache creates a cache holding up to size paths. A ttl of zero keeps entries
// until they are evicted by size.
func newPathCache(size int, ttl time.Duration) *pathCache {
	return &pathCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *pathCache) Get(key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *pathCache) Set(key, resolved string) {
	c.lru.Add(key, resolved)
}

func (c *pathCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries, for when files move underneath the locator.
func (c *pathCache) Clear() {
	c.lru.Purge()
}
