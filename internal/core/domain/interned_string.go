package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Provider names and source identities repeat heavily across the graph,
// the input record and the persisted snapshot, so interning keeps
// comparisons cheap and deduplication allocation-free.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns the wrapping value object.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
// The zero InternedString renders as the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the value has never been interned.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
