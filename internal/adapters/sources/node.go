package sources

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the Sources Graft node.
const NodeID graft.ID = "adapter.sources"

func init() {
	graft.Register(graft.Node[ports.Sources]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Sources, error) {
			return NewReader(), nil
		},
	})
}
