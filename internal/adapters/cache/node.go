package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deparse/internal/core/ports"
)

// NodeID is the unique identifier for the state cache Graft node.
const NodeID graft.ID = "adapter.state_cache"

func init() {
	graft.Register(graft.Node[ports.StateCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateCache, error) {
			return New(DefaultSize)
		},
	})
}
