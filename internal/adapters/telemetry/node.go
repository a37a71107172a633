package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/core/ports"
)

// NodeID is the unique identifier for the Tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

// TraceEnvVar enables span logging when set to a non-empty value.
const TraceEnvVar = "CACHET_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnvVar) == "" {
				return NewNoOpTracer(), nil
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			provider := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewLogBridge(log)),
			)
			otel.SetTracerProvider(provider)

			return NewOTelTracer("cachet"), nil
		},
	})
}
