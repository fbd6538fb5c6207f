package launcher

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// Ranker orders a fixed catalogue of actions against a query. Ranking never
// drops actions: matches come first, best score first, followed by the rest
// in catalogue order, so the list length is independent of the query.
type Ranker struct {
	catalogue []Action
	hash      string
	fuzzy     bool
	cache     *RankCache
}

// NewRanker creates a ranker over catalogue. A cacheSize of zero or less
// disables caching.
func NewRanker(catalogue []Action, useFuzzy bool, cacheSize int) *Ranker {
	r := &Ranker{
		catalogue: append([]Action(nil), catalogue...),
		hash:      ComputeCatalogueHash(catalogue),
		fuzzy:     useFuzzy,
	}

	if cacheSize > 0 {
		cache, err := NewRankCache(cacheSize)
		if err != nil {
			log.Printf("Failed to create rank cache: %v", err)
		} else {
			r.cache = cache
		}
	}

	return r
}

// Len returns the number of actions every ranking contains.
func (r *Ranker) Len() int {
	return len(r.catalogue)
}

// Catalogue returns the actions in catalogue order.
func (r *Ranker) Catalogue() []Action {
	return append([]Action(nil), r.catalogue...)
}

// Rank returns the catalogue ordered for query.
func (r *Ranker) Rank(query string) []Action {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.Catalogue()
	}

	if r.cache != nil {
		if ranked, ok := r.cache.Get(query, r.hash); ok {
			return ranked
		}
	}

	start := time.Now()
	var matched []int
	if r.fuzzy {
		matched = r.fuzzyMatches(query)
	} else {
		matched = r.substringMatches(query)
	}
	order := appendRemaining(matched, len(r.catalogue))

	ranked := make([]Action, 0, len(r.catalogue))
	for _, i := range order {
		ranked = append(ranked, r.catalogue[i])
	}

	log.Printf("[RANKER] query='%s' matched %d/%d in %v", query, len(matched), len(ranked), time.Since(start))

	if r.cache != nil {
		r.cache.Put(query, r.hash, ranked)
	}
	return ranked
}

// Stats exposes the cache statistics, or nil when caching is disabled.
func (r *Ranker) Stats() *CacheStats {
	if r.cache == nil {
		return nil
	}
	return r.cache.GetStats()
}

func (r *Ranker) descriptions() []string {
	out := make([]string, len(r.catalogue))
	for i, a := range r.catalogue {
		out[i] = a.Description()
	}
	return out
}

func (r *Ranker) fuzzyMatches(query string) []int {
	matches := fuzzy.Find(query, r.descriptions())

	// Ties keep catalogue order.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		indexes = append(indexes, m.Index)
	}
	return indexes
}

func (r *Ranker) substringMatches(query string) []int {
	q := strings.ToLower(query)
	indexes := make([]int, 0, len(r.catalogue))
	for i, d := range r.descriptions() {
		if strings.Contains(strings.ToLower(d), q) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// appendRemaining appends every index in [0, n) not already present.
func appendRemaining(indexes []int, n int) []int {
	seen := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		seen[i] = true
	}
	for i := 0; i < n; i++ {
		if !seen[i] {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
