package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cachet/internal/adapters/telemetry"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.trai.ch/cachet/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

// newMockComponents builds Components backed entirely by mocks; the loader
// and logger are returned for per-test expectations.
func newMockComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockStore := mocks.NewMockSnapshotStore(ctrl)
	mockSources := mocks.NewMockSources(ctrl)
	mockProps := mocks.NewMockPropertyStore(ctrl)
	tracer := telemetry.NewNoOpTracer()

	application := app.New(
		mockLoader,
		evaluator.New(mockSources, mockProps, tracer),
		mockStore,
		mockSources,
		mockProps,
		tracer,
		mockLogger,
	)

	return &app.Components{
		App:    application,
		Logger: mockLogger,
	}, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _, _ := newMockComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, mockLoader, mockLogger := newMockComponents(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
