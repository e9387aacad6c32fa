package konvent

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/konvent-build/konvent/pkg/catalog"
)

const catalogCacheMaxEntries = 32

// catalogCache caches parsed version catalogs by their absolute file path.
// Modules of a project normally share one catalog, the cache prevents that it
// is read and parsed once per module.
type catalogCache struct {
	cache *lru.Cache

	hits int
	miss int

	mu sync.Mutex
}

type catalogCacheStats struct {
	Entries int
	Hits    int
	Miss    int
}

func newCatalogCache() *catalogCache {
	return &catalogCache{
		cache: lru.New(catalogCacheMaxEntries),
	}
}

func (c *catalogCache) get(path string) *catalog.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, exist := c.cache.Get(path)
	if !exist {
		c.miss++
		return nil
	}

	c.hits++

	return v.(*catalog.Catalog)
}

func (c *catalogCache) add(path string, cat *catalog.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(path, cat)
}

func (c *catalogCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
}

func (c *catalogCache) statistics() *catalogCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &catalogCacheStats{
		Entries: c.cache.Len(),
		Hits:    c.hits,
		Miss:    c.miss,
	}
}
