// Package domain contains the core domain models for provider evaluation
// and configuration-cache validity.
package domain

// ProviderKind identifies the external source a provider obtains its value from.
type ProviderKind string

const (
	// ProviderEnv reads an environment variable.
	ProviderEnv ProviderKind = "env"
	// ProviderFile reads a file's content.
	ProviderFile ProviderKind = "file"
	// ProviderProperty reads and bumps a key in the side-state properties file.
	// Obtaining this kind mutates external state; that side effect must never
	// surface in fingerprints or in the input record.
	ProviderProperty ProviderKind = "property"
)

// Valid reports whether the kind is one of the supported source kinds.
func (k ProviderKind) Valid() bool {
	switch k {
	case ProviderEnv, ProviderFile, ProviderProperty:
		return true
	}
	return false
}

// Param is a declared parameter slot of a provider. A slot holds either a
// literal value or a binding to another provider, never both.
type Param struct {
	Name    string
	Literal string
	Binding InternedString
}

// IsBound reports whether the slot is bound to another provider.
func (p Param) IsBound() bool {
	return !p.Binding.IsZero()
}

// Provider is a lazily computed value with an identity and declared
// parameters. Obtaining its value may read external state and, for the
// property kind, mutate the side-state file. Only the declared shape below
// participates in fingerprinting.
type Provider struct {
	Name   InternedString
	Kind   ProviderKind
	Key    string
	Params []Param
}
