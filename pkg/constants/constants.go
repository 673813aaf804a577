// Package constants provides shared constants used throughout the capsync
// codebase: file permissions, size limits, and CLI defaults that should be
// consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxManifestBytes is the maximum size of a desired-state manifest file
	MaxManifestBytes = 64 << 20

	// MaxSnapshotBytes is the maximum size of an actual-state snapshot file
	MaxSnapshotBytes = 256 << 20

	// MaxDifferencesPerEntity caps the difference trail rendered per entity
	// in operator diagnostics
	MaxDifferencesPerEntity = 50
)
