package domain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Role names one folder of a project layout.
type Role string

const (
	// RoleSource is the folder holding the project sources.
	RoleSource Role = "source"

	// RoleBuild is the folder build outputs and staged resources go to.
	RoleBuild Role = "build"

	// RoleGenerators is the folder downstream generators write their files to.
	RoleGenerators Role = "generators"
)

const (
	// ConventionCMake is the canonical CMake project layout.
	ConventionCMake = "cmake"

	// DefaultSourceFolder is the source folder relative to the project root.
	DefaultSourceFolder = "."

	// DefaultBuildFolder is the build folder relative to the project root.
	DefaultBuildFolder = "build"

	// GeneratorsFolderName is the generators folder relative to the build folder.
	GeneratorsFolderName = "generators"

	// CompilerMSVC is the compiler setting whose default generator is multi-config.
	CompilerMSVC = "msvc"
)

// LayoutConfig maps each role of a convention to an absolute folder.
// It is stable across invocations for the same root and profile.
type LayoutConfig struct {
	Convention string
	Root       string
	Source     string
	Build      string
	Generators string
}

// Roles returns the roles of a layout in a fixed order.
func (LayoutConfig) Roles() []Role {
	return []Role{RoleSource, RoleBuild, RoleGenerators}
}

// Path returns the folder assigned to role.
func (l LayoutConfig) Path(role Role) (string, bool) {
	switch role {
	case RoleSource:
		return l.Source, true
	case RoleBuild:
		return l.Build, true
	case RoleGenerators:
		return l.Generators, true
	default:
		return "", false
	}
}

// IsMultiConfig reports whether a CMake generator keeps all build types in one build folder.
func IsMultiConfig(generator string) bool {
	return strings.Contains(generator, "Visual") ||
		strings.Contains(generator, "Xcode") ||
		strings.Contains(generator, "Multi-Config")
}

// isMultiConfigProfile reports whether the build keeps all build types in one folder.
// Without an explicit generator, msvc builds default to the Visual Studio generator.
func isMultiConfigProfile(generator string, settings Settings) bool {
	if generator == "" {
		return settings.Compiler == CompilerMSVC
	}
	return IsMultiConfig(generator)
}

// SelectLayout maps root to the folder layout of the configured convention.
// Single-config generators get one build folder per build type.
func SelectLayout(root string, opts LayoutOptions, settings Settings) (LayoutConfig, error) {
	if root == "" {
		return LayoutConfig{}, errors.Join(ErrLayout, ErrEmptyRoot)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(zerr.Wrap(err, ErrRootMissing.Error()), "root", root))
	}

	info, err := os.Stat(absRoot)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(ErrRootMissing, "root", absRoot))
	case err != nil:
		return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(zerr.Wrap(err, ErrRootMissing.Error()), "root", absRoot))
	case !info.IsDir():
		return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(ErrRootNotDirectory, "root", absRoot))
	}

	convention := opts.Convention
	if convention == "" {
		convention = ConventionCMake
	}
	if convention != ConventionCMake {
		return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(ErrUnknownConvention, "convention", convention))
	}

	source := opts.Source
	if source == "" {
		source = DefaultSourceFolder
	}
	build := opts.Build
	if build == "" {
		build = DefaultBuildFolder
	}

	if !isMultiConfigProfile(opts.Generator, settings) {
		if settings.BuildType == "" {
			return LayoutConfig{}, errors.Join(ErrLayout, zerr.With(ErrMissingBuildType, "generator", opts.Generator))
		}
		build = filepath.Join(build, settings.BuildType)
	}

	buildDir := resolveResourcePath(absRoot, build)
	return LayoutConfig{
		Convention: convention,
		Root:       absRoot,
		Source:     resolveResourcePath(absRoot, source),
		Build:      buildDir,
		Generators: filepath.Join(buildDir, GeneratorsFolderName),
	}, nil
}
