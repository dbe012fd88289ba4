// Package store implements the PackageResolver port on top of a local package store.
//
// The store holds one folder per installed package version, laid out as
// <store>/<name>/<version>.
package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageResolver = (*Resolver)(nil)

// Resolver implements ports.PackageResolver for a folder based package store.
type Resolver struct {
	validate *validator.Validate
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Resolve maps spec to its install folder below storeRoot.
func (r *Resolver) Resolve(ctx context.Context, storeRoot string, spec domain.DependencySpec) (domain.ResolvedPackage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResolvedPackage{}, zerr.Wrap(err, "resolution interrupted")
	}

	name, version := spec.Name.String(), spec.Version.String()

	if storeRoot == "" {
		return domain.ResolvedPackage{}, errors.Join(domain.ErrResolution, domain.ErrMissingStorePath)
	}

	if err := r.validate.Var(version, "required,semver"); err != nil {
		malformed := zerr.With(domain.ErrMalformedVersion, "package", name)
		return domain.ResolvedPackage{}, errors.Join(domain.ErrResolution, zerr.With(malformed, "version", version))
	}

	installFolder := filepath.Join(storeRoot, name, version)
	info, err := os.Stat(installFolder)
	if err == nil && info.IsDir() {
		return domain.ResolvedPackage{
			Name:          spec.Name,
			Version:       spec.Version,
			InstallFolder: installFolder,
		}, nil
	}

	notFound := zerr.With(domain.ErrPackageNotFound, "package", spec.String())
	notFound = zerr.With(notFound, "path", installFolder)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.ResolvedPackage{}, errors.Join(domain.ErrResolution, notFound, err)
	}
	return domain.ResolvedPackage{}, errors.Join(domain.ErrResolution, notFound)
}
