package ports

import "go.trai.ch/cachet/internal/core/domain"

// PropertyStore defines access to the mutable side-state properties file.
// Bump is the manufactured side effect of this repository: it changes the
// file on every evaluation, which is exactly the write that must never leak
// into the input record of an enclosing evaluation.
//
//go:generate go run go.uber.org/mock/mockgen -source=props.go -destination=mocks/mock_props.go -package=mocks
type PropertyStore interface {
	// Observe reads the current value of key without mutating anything.
	// A missing key observes as absent.
	Observe(key string) (string, domain.Observation, error)

	// Bump increments the counter stored under key, persists it, and
	// returns the new value with its observation.
	Bump(key string) (string, domain.Observation, error)
}
