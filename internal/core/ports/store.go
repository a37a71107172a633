package ports

import "go.trai.ch/cachet/internal/core/domain"

// SnapshotStore defines the interface for persisting the configuration-cache
// snapshot between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot of the previous run.
	// Returns nil, nil if no snapshot has been stored yet.
	Get() (*domain.Snapshot, error)

	// Put stores the snapshot for the next run.
	Put(snap domain.Snapshot) error
}
