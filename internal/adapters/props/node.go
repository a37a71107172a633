package props

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the PropertyStore Graft node.
const NodeID graft.ID = "adapter.property_store"

func init() {
	graft.Register(graft.Node[ports.PropertyStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PropertyStore, error) {
			return NewStore(domain.DefaultPropertiesPath()), nil
		},
	})
}
