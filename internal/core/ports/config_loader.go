package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading the project manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest kiln.yaml and returns the parsed manifest.
	Load(cwd string) (*domain.Manifest, error)

	// DiscoverRoot walks up from cwd to find the directory containing kiln.yaml.
	DiscoverRoot(cwd string) (string, error)

	// WriteDefault writes the default manifest into dir and returns its path.
	// It fails if a manifest already exists there.
	WriteDefault(dir string) (string, error)
}
