// Package cache memoizes normalized lock tables in memory.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultSize is the number of normalized states kept per process.
const DefaultSize = 16

var _ ports.StateCache = (*StateCache)(nil)

// StateCache is an LRU of normalized states keyed by input hash.
type StateCache struct {
	states *lru.Cache[string, *domain.NormalizedState]
}

// New creates a StateCache holding at most size states.
func New(size int) (*StateCache, error) {
	states, err := lru.New[string, *domain.NormalizedState](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create state cache"), "size", size)
	}
	return &StateCache{states: states}, nil
}

// Get returns the state stored under key.
func (c *StateCache) Get(key string) (*domain.NormalizedState, bool) {
	return c.states.Get(key)
}

// Add stores state under key, evicting the least recently used entry when full.
func (c *StateCache) Add(key string, state *domain.NormalizedState) {
	c.states.Add(key, state)
}
