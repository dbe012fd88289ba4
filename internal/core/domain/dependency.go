package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DependencySpec identifies one external library the project requires.
// It is comparable and fixed for the duration of a run.
type DependencySpec struct {
	Name    InternedString
	Version InternedString
}

// NewDependencySpec creates a DependencySpec from a name and a version.
func NewDependencySpec(name, version string) DependencySpec {
	return DependencySpec{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// ParseDependencySpec parses a reference written as name/version.
// The version is not checked here, the resolver rejects malformed versions.
func ParseDependencySpec(ref string) (DependencySpec, error) {
	name, version, ok := strings.Cut(strings.TrimSpace(ref), "/")
	if !ok || name == "" || version == "" || strings.Contains(version, "/") {
		return DependencySpec{}, zerr.With(ErrInvalidReference, "reference", ref)
	}
	return NewDependencySpec(name, version), nil
}

// String returns the reference form name/version.
func (d DependencySpec) String() string {
	return d.Name.String() + "/" + d.Version.String()
}

// ResolvedPackage is a dependency bound to the folder its files were installed into.
// It is produced by the resolver for each run and never persisted.
type ResolvedPackage struct {
	Name          InternedString
	Version       InternedString
	InstallFolder string
}

// Spec returns the dependency the package was resolved from.
func (p ResolvedPackage) Spec() DependencySpec {
	return DependencySpec{Name: p.Name, Version: p.Version}
}
