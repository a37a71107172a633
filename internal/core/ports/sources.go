package ports

import "go.trai.ch/cachet/internal/core/domain"

// Sources defines read access to external inputs. Every read returns the raw
// value together with an Observation carrying the hashed value, so callers
// can feed the tracker without re-reading the source.
//
//go:generate go run go.uber.org/mock/mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type Sources interface {
	// ObserveFile reads the file at path and returns its content.
	ObserveFile(path string) (string, domain.Observation, error)

	// ObserveEnv reads the environment variable with the given name.
	// An unset variable observes differently from one set to the empty
	// string.
	ObserveEnv(name string) (string, domain.Observation)
}
