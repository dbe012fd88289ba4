package domain

import "path/filepath"

const (
	// KilnDirName is the per-project directory kiln keeps its state in.
	KilnDirName = ".kiln"

	// StoreDirName holds one JSON stage record per staged package and destination.
	StoreDirName = "store"

	// PackagesDirName is the package store used when the manifest names none.
	PackagesDirName = "packages"

	// KilnFileName is the name of the project manifest file.
	KilnFileName = "kiln.yaml"

	// ManifestFormat is the manifest version this build of kiln reads.
	ManifestFormat = "1"

	// DirPerm is the permission for directories kiln creates (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the permission for files kiln writes (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRecordStorePath returns the stage record store path relative to the project root.
func DefaultRecordStorePath() string {
	return filepath.Join(KilnDirName, StoreDirName)
}

// DefaultPackageStorePath returns the package store path relative to the project root.
func DefaultPackageStorePath() string {
	return filepath.Join(KilnDirName, PackagesDirName)
}
