package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the SnapshotStore Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			store, err := NewStore(domain.DefaultSnapshotPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
