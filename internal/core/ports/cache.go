package ports

import "go.trai.ch/deparse/internal/core/domain"

// StateCache holds normalized states keyed by input hash.
type StateCache interface {
	// Get returns the state stored under key.
	Get(key string) (*domain.NormalizedState, bool)

	// Add stores state under key, possibly evicting older entries.
	Add(key string, state *domain.NormalizedState)
}
