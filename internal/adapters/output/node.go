package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deparse/internal/core/ports"
)

// NodeID is the unique identifier for the result writer Graft node.
const NodeID graft.ID = "adapter.result_writer"

func init() {
	graft.Register(graft.Node[ports.ResultWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResultWriter, error) {
			return NewJSONWriter(), nil
		},
	})
}
