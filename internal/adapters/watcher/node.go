package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the Watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

// DefaultDebounceWindow is the window used to coalesce file system events.
const DefaultDebounceWindow = 250 * time.Millisecond

func init() {
	graft.Register(graft.Node[*Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, DefaultDebounceWindow), nil
		},
	})
}
