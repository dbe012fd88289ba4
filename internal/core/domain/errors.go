package domain

import "go.trai.ch/zerr"

// Error categories. Every failure surfaced by a generation run is joined with
// exactly one of these so callers can classify it with errors.Is.
var (
	// ErrResolution is returned when a declared dependency cannot be resolved to an install folder.
	ErrResolution = zerr.New("dependency resolution failed")

	// ErrStageIO is returned when staging cannot read the package or write the destination.
	ErrStageIO = zerr.New("staging i/o failed")

	// ErrLayout is returned when the project root cannot be mapped to a folder layout.
	ErrLayout = zerr.New("project root cannot be mapped to a layout")
)

var (
	// ErrInvalidReference is returned when a requirement is not written as name/version.
	ErrInvalidReference = zerr.New("invalid requirement reference, expected format: name/version")

	// ErrDuplicateRequirement is returned when a package is required more than once.
	ErrDuplicateRequirement = zerr.New("package is required more than once")

	// ErrUnknownStagePackage is returned when a stage rule names a package that is not required.
	ErrUnknownStagePackage = zerr.New("stage rule references a package that is not required")

	// ErrNonLocalStagePath is returned when a stage rule folder escapes its install or build folder.
	ErrNonLocalStagePath = zerr.New("stage rule folder must stay inside its base folder")

	// ErrMalformedVersion is returned when a requirement version is not a semantic version.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrPackageNotFound is returned when a package version is missing from the package store.
	ErrPackageNotFound = zerr.New("package not found in store")

	// ErrMissingStorePath is returned when no package store is configured.
	ErrMissingStorePath = zerr.New("package store path is empty")

	// ErrUnresolvedPackage is returned when a stage rule runs before its package was resolved.
	ErrUnresolvedPackage = zerr.New("package was not resolved")

	// ErrInstallFolderMissing is returned when a resolved package's install folder does not exist.
	ErrInstallFolderMissing = zerr.New("package install folder is missing")

	// ErrDestinationUnwritable is returned when the staging destination cannot be created.
	ErrDestinationUnwritable = zerr.New("destination folder is not writable")

	// ErrSourceWalkFailed is returned when the staging source folder cannot be walked.
	ErrSourceWalkFailed = zerr.New("failed to walk staging source folder")

	// ErrFileCopyFailed is returned when a matched file cannot be copied into the destination.
	ErrFileCopyFailed = zerr.New("failed to copy file")

	// ErrInvalidPattern is returned when a stage pattern or exclude does not compile.
	ErrInvalidPattern = zerr.New("invalid stage pattern")

	// ErrEmptyRoot is returned when no project root is given to the layout selector.
	ErrEmptyRoot = zerr.New("project root is empty")

	// ErrRootMissing is returned when the project root does not exist.
	ErrRootMissing = zerr.New("project root does not exist")

	// ErrRootNotDirectory is returned when the project root is a file.
	ErrRootNotDirectory = zerr.New("project root is not a directory")

	// ErrUnknownConvention is returned when a layout convention is not supported.
	ErrUnknownConvention = zerr.New("unknown layout convention")

	// ErrMissingBuildType is returned when a single-config layout has no build type setting.
	ErrMissingBuildType = zerr.New("build_type setting is required for single-config generators")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find kiln.yaml")

	// ErrConfigExists is returned when init would overwrite an existing config file.
	ErrConfigExists = zerr.New("kiln.yaml already exists")

	// ErrConfigWriteFailed is returned when init cannot write the config file.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrStoreCreateFailed is returned when the stage record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create stage record store directory")

	// ErrStoreReadFailed is returned when a stage record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stage record")

	// ErrStoreUnmarshalFailed is returned when a stage record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stage record")

	// ErrStoreMarshalFailed is returned when a stage record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal stage record")

	// ErrStoreWriteFailed is returned when a stage record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write stage record")

	// ErrStoreDeleteFailed is returned when a stage record cannot be removed.
	ErrStoreDeleteFailed = zerr.New("failed to delete stage record")

	// ErrRecordUpdateFailed is returned when the stage record of a finished staging cannot be saved.
	ErrRecordUpdateFailed = zerr.New("failed to update stage record store")

	// ErrFailedToCleanFile is returned when a previously staged file cannot be removed.
	ErrFailedToCleanFile = zerr.New("failed to clean staged file")

	// ErrFileHashFailed is returned when hashing a staged file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrUnknownLogFormat is returned when the log format flag has an unsupported value.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'auto', 'pretty' or 'json'")
)
