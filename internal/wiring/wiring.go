// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cachet/internal/adapters/config"
	_ "go.trai.ch/cachet/internal/adapters/logger"
	_ "go.trai.ch/cachet/internal/adapters/props"
	_ "go.trai.ch/cachet/internal/adapters/sources"
	_ "go.trai.ch/cachet/internal/adapters/state"
	_ "go.trai.ch/cachet/internal/adapters/telemetry"
	_ "go.trai.ch/cachet/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cachet/internal/app"
	_ "go.trai.ch/cachet/internal/engine/evaluator"
)
