// Package tracker implements depth-counted input tracking for one
// evaluation pass.
//
// The historical failure mode this package exists to prevent: a flat boolean
// toggle is re-enabled as soon as a nested provider resolution finishes, so
// reads performed later in the SAME enclosing Obtain call get recorded as
// cache inputs. The tracker therefore counts open disable scopes; tracking
// is enabled only when every scope has been released.
package tracker

import (
	"sync"

	"go.trai.ch/cachet/internal/core/domain"
)

// Tracker records observed external inputs while no disable scope is open.
// One Tracker serves exactly one evaluation pass; the evaluator creates a
// fresh instance per pass so process-wide state stays lifecycle-scoped.
type Tracker struct {
	mu     sync.Mutex
	depth  int
	record *domain.InputRecord
}

// New creates a Tracker with tracking enabled and an empty record.
func New() *Tracker {
	return &Tracker{record: domain.NewInputRecord()}
}

// Scope is one open "tracking disabled" region. Release must be called
// exactly once per scope, on every exit path; it is idempotent so a
// deferred Release after an early explicit one stays harmless.
type Scope struct {
	t        *Tracker
	released bool
}

// Disable opens a new disable scope and returns it.
func (t *Tracker) Disable() *Scope {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.depth++
	return &Scope{t: t}
}

// Release closes the scope. Only when the last open scope is released does
// tracking become enabled again.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true

	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	s.t.depth--
}

// Enabled reports whether observations are currently being recorded.
func (t *Tracker) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.depth == 0
}

// Record adds an observation to the record. It is a no-op while any disable
// scope is open.
func (t *Tracker) Record(obs domain.Observation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.depth > 0 {
		return
	}
	t.record.Add(obs)
}

// Entries returns the recorded observations in canonical order.
func (t *Tracker) Entries() []domain.Observation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.Entries()
}

// Contains reports whether a source was recorded.
func (t *Tracker) Contains(kind domain.SourceKind, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.Contains(kind, id)
}
