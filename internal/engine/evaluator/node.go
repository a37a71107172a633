package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/adapters/props"
	"go.trai.ch/cachet/internal/adapters/sources"
	"go.trai.ch/cachet/internal/adapters/telemetry"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the Evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sources.NodeID,
			props.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Evaluator, error) {
			src, err := graft.Dep[ports.Sources](ctx)
			if err != nil {
				return nil, err
			}

			propStore, err := graft.Dep[ports.PropertyStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(src, propStore, tracer), nil
		},
	})
}
