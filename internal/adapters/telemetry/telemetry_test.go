package telemetry_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/adapters/telemetry"
)

func TestLogBridge_ForwardsSpanLifecycle(t *testing.T) {
	var buf strings.Builder
	log := logger.NewWithWriter(&buf)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)),
	)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "evaluate")
	span.End()

	out := buf.String()
	require.Contains(t, out, "span started: evaluate")
	require.Contains(t, out, "span ended: evaluate")
}

func TestNoOpTracer_SpanIsInert(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "evaluate")
	require.NotNil(t, ctx)

	// None of these may panic.
	span.SetAttribute("providers", 3)
	span.RecordError(nil)
	span.End()
}
