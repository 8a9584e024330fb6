package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deparse/internal/core/ports"
)

// NodeID is the unique identifier for the export state store Graft node.
const NodeID graft.ID = "adapter.export_info_store"

func init() {
	graft.Register(graft.Node[ports.ExportInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExportInfoStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
