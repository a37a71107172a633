package domain

import "go.trai.ch/zerr"

var (
	// ErrProviderAlreadyExists is returned when a provider with the same name is declared twice.
	ErrProviderAlreadyExists = zerr.New("provider already exists")

	// ErrUnknownProvider is returned when a parameter binds a provider that is not declared.
	ErrUnknownProvider = zerr.New("unknown provider")

	// ErrBindingCycle is returned when provider parameter bindings form a cycle.
	ErrBindingCycle = zerr.New("provider binding cycle detected")

	// ErrInvalidProviderKind is returned when a provider declares an unsupported source kind.
	ErrInvalidProviderKind = zerr.New("invalid provider source, expected 'env', 'file' or 'property'")

	// ErrMissingSourceKey is returned when a provider declares no source key.
	ErrMissingSourceKey = zerr.New("missing source key")

	// ErrInvalidParam is returned when a parameter declares both a literal value and a binding,
	// or neither.
	ErrInvalidParam = zerr.New("parameter must declare exactly one of 'value' or 'provider'")

	// ErrGraphNotValidated is returned when fingerprints are requested before Validate.
	ErrGraphNotValidated = zerr.New("provider graph has not been validated")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInputNotFound is returned when a tracked input file is missing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrSnapshotCreateFailed is returned when the snapshot store directory cannot be created.
	ErrSnapshotCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrSnapshotReadFailed is returned when the snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotUnmarshalFailed is returned when the snapshot cannot be unmarshaled.
	ErrSnapshotUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrSnapshotMarshalFailed is returned when the snapshot cannot be marshaled.
	ErrSnapshotMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrSnapshotWriteFailed is returned when the snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot")

	// ErrStateCreateFailed is returned when the side-state directory cannot be created.
	ErrStateCreateFailed = zerr.New("failed to create state directory")

	// ErrStateReadFailed is returned when the side-state properties file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read state properties")

	// ErrStateWriteFailed is returned when the side-state properties file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write state properties")

	// ErrEvaluationFailed is returned when provider evaluation fails.
	ErrEvaluationFailed = zerr.New("provider evaluation failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start file watcher")
)
