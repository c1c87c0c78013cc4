package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// ResultCache stores extraction results keyed by content hash. A cache hit
// must be structurally identical to the miss that produced it; callers treat
// cached bundles as read-only. Implementations must be safe for concurrent
// use.
type ResultCache interface {
	Get(key string) (*EntityBundle, bool)
	Put(key string, bundle *EntityBundle)
}

// CacheKey derives the cache key for one (text, options) pair. Options fields
// that do not alter output are excluded from the key.
func CacheKey(text string, opts Options) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	if encoded, err := json.Marshal(opts); err == nil {
		h.Write(encoded)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MemoryCache is the default in-process ResultCache: a mutex-guarded map,
// unbounded for the process lifetime. Memory grows with the number of
// distinct inputs; acceptable here, swap in a bounded or Redis-backed
// implementation where that matters.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*EntityBundle
}

// NewMemoryCache builds an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*EntityBundle)}
}

func (c *MemoryCache) Get(key string) (*EntityBundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bundle, ok := c.entries[key]
	return bundle, ok
}

func (c *MemoryCache) Put(key string, bundle *EntityBundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = bundle
}

// Len reports the number of cached bundles.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
