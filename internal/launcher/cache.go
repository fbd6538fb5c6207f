package launcher

import (
	"crypto/md5"
	"fmt"
	"log"
	"sync"

	"github.com/hashicorp/golang-lru/v2"
)

// RankCache provides LRU caching of rankings keyed by query and catalogue.
type RankCache struct {
	cache   *lru.Cache[string, []Action]
	maxSize int
	hits    int64
	misses  int64
	mu      sync.Mutex
}

// CacheStats holds cache statistics
type CacheStats struct {
	Size    int     `json:"size"`
	MaxSize int     `json:"max_size"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// NewRankCache creates a new cache with the specified maximum size
func NewRankCache(maxSize int) (*RankCache, error) {
	if maxSize <= 0 {
		maxSize = 100
	}

	cache, err := lru.New[string, []Action](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &RankCache{
		cache:   cache,
		maxSize: maxSize,
	}, nil
}

// Get returns a copy of the cached ranking for a query.
func (c *RankCache) Get(query, catalogueHash string) ([]Action, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ranked, found := c.cache.Get(makeKey(query, catalogueHash))
	if !found {
		c.misses++
		return nil, false
	}

	c.hits++
	return append([]Action(nil), ranked...), true
}

// Put stores a ranking.
func (c *RankCache) Put(query, catalogueHash string, ranked []Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if evicted := c.cache.Add(makeKey(query, catalogueHash), append([]Action(nil), ranked...)); evicted {
		log.Printf("[RANK-CACHE] Evicted oldest entry (size %d)", c.maxSize)
	}
}

// GetStats returns current cache statistics
func (c *RankCache) GetStats() *CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return &CacheStats{
		Size:    c.cache.Len(),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: hitRate,
	}
}

func makeKey(query, catalogueHash string) string {
	return fmt.Sprintf("%s:%s", catalogueHash, query)
}

// ComputeCatalogueHash identifies a catalogue so rankings computed against a
// different action list are never served.
func ComputeCatalogueHash(actions []Action) string {
	if len(actions) == 0 {
		return ""
	}

	h := md5.New()
	for _, a := range actions {
		fmt.Fprintf(h, "%s\x00", a.ID())
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
