package secrets

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache wraps a Fetcher and caches a single named secret after the first
// successful fetch. Concurrent first-time callers share one in-flight fetch
// via singleflight, so the vault is hit at most once. A failed fetch is not
// cached; the next caller retries.
type Cache struct {
	fetcher Fetcher
	name    string

	group singleflight.Group

	mu     sync.RWMutex
	value  string
	loaded bool
}

// NewCache creates a cache for the secret with the given name.
func NewCache(fetcher Fetcher, name string) *Cache {
	return &Cache{fetcher: fetcher, name: name}
}

// Get returns the cached secret, fetching it on first use.
func (c *Cache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.loaded {
		v := c.value
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(c.name, func() (any, error) {
		// A waiter released just after a successful fetch must not
		// trigger a second one.
		c.mu.RLock()
		if c.loaded {
			v := c.value
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		value, err := c.fetcher.Fetch(ctx, c.name)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = value
		c.loaded = true
		c.mu.Unlock()

		return value, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}
