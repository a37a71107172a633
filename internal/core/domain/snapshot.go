package domain

import "time"

// Snapshot is the persisted configuration-cache state from one evaluation:
// the declared-parameter fingerprints of every provider and the input record
// of the run. Validity of a later run is decided against this snapshot only;
// side effects of obtaining provider values are never part of it.
type Snapshot struct {
	Fingerprints map[string]string `json:"fingerprints"`
	Inputs       []Observation     `json:"inputs"`
	CreatedAt    time.Time         `json:"created_at,omitzero"`
}
