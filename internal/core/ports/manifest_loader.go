package ports

import "go.trai.ch/rig/internal/core/domain"

// ManifestLoader defines the interface for loading the dependency manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. An empty path searches cwd for the
	// default manifest names.
	Load(cwd, path string) (*domain.Manifest, error)
}
