package domain

import "sort"

// SourceKind identifies the kind of external input an observation refers to.
type SourceKind string

const (
	// SourceFile is a file content observation.
	SourceFile SourceKind = "file"
	// SourceEnv is an environment variable observation.
	SourceEnv SourceKind = "env"
	// SourceProperty is a side-state property observation.
	SourceProperty SourceKind = "property"
)

// Observation is a single (source kind, source identity, observed value)
// tuple. The observed value is stored as a hash so snapshots never embed
// raw input content.
type Observation struct {
	Kind      SourceKind `json:"kind"`
	ID        string     `json:"id"`
	ValueHash string     `json:"value_hash"`
}

type observationKey struct {
	kind SourceKind
	id   InternedString
}

// InputRecord accumulates the external inputs observed while tracking was
// enabled during one evaluation pass. Re-observing a source replaces the
// previously recorded value hash.
type InputRecord struct {
	seen    map[observationKey]int
	entries []Observation
}

// NewInputRecord creates an empty InputRecord.
func NewInputRecord() *InputRecord {
	return &InputRecord{seen: make(map[observationKey]int)}
}

// Add records an observation, deduplicating by (kind, identity).
func (r *InputRecord) Add(obs Observation) {
	key := observationKey{kind: obs.Kind, id: NewInternedString(obs.ID)}
	if i, ok := r.seen[key]; ok {
		r.entries[i] = obs
		return
	}
	r.seen[key] = len(r.entries)
	r.entries = append(r.entries, obs)
}

// Contains reports whether a source was recorded.
func (r *InputRecord) Contains(kind SourceKind, id string) bool {
	_, ok := r.seen[observationKey{kind: kind, id: NewInternedString(id)}]
	return ok
}

// Len returns the number of recorded sources.
func (r *InputRecord) Len() int {
	return len(r.entries)
}

// Entries returns the observations sorted by kind, then identity, so the
// persisted snapshot is byte-stable across runs.
func (r *InputRecord) Entries() []Observation {
	out := make([]Observation, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].ID < out[j].ID
	})
	return out
}
