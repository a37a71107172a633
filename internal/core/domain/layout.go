package domain

import "path/filepath"

const (
	// CachetDirName is the name of the internal workspace directory.
	CachetDirName = ".cachet"

	// CacheDirName is the name of the configuration cache directory.
	CacheDirName = "cache"

	// StateDirName is the name of the mutable side-state directory.
	StateDirName = "state"

	// SnapshotFileName is the name of the persisted snapshot file.
	SnapshotFileName = "snapshot.json"

	// PropertiesFileName is the name of the side-state properties file.
	PropertiesFileName = "run.properties"

	// ConfigFileName is the name of the provider configuration file.
	ConfigFileName = "cachet.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotPath returns the default path of the persisted snapshot,
// relative to the project root.
func DefaultSnapshotPath() string {
	return filepath.Join(CachetDirName, CacheDirName, SnapshotFileName)
}

// DefaultPropertiesPath returns the default path of the side-state
// properties file, relative to the project root.
func DefaultPropertiesPath() string {
	return filepath.Join(CachetDirName, StateDirName, PropertiesFileName)
}
