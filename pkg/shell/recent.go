package shell

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Recent tracks the most recently opened or saved files
type Recent struct {
	cache *lru.Cache[string, struct{}]
}

// NewRecent creates a list holding up to limit paths, seeded newest first
func NewRecent(limit int, seed []string) (*Recent, error) {
	cache, err := lru.New[string, struct{}](limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent file list: %w", err)
	}
	for i := len(seed) - 1; i >= 0; i-- {
		cache.Add(seed[i], struct{}{})
	}
	return &Recent{cache: cache}, nil
}

// Add marks path as the most recent
func (r *Recent) Add(path string) {
	r.cache.Add(path, struct{}{})
}

// Remove forgets path
func (r *Recent) Remove(path string) {
	r.cache.Remove(path)
}

// Paths returns the paths newest first
func (r *Recent) Paths() []string {
	keys := r.cache.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}
