// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// PackageResolver binds a declared dependency to the folder its files were installed into.
//
//go:generate mockgen -source=package_resolver.go -destination=mocks/mock_package_resolver.go -package=mocks
type PackageResolver interface {
	// Resolve looks spec up in the package store rooted at storeRoot.
	// Errors are classified with domain.ErrResolution.
	Resolve(ctx context.Context, storeRoot string, spec domain.DependencySpec) (domain.ResolvedPackage, error)
}
