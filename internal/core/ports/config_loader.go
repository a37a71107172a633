package ports

import "go.trai.ch/cachet/internal/core/domain"

// ConfigLoader defines the interface for loading the provider configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the validated manifest.
	Load(cwd string) (*domain.Manifest, error)
}
