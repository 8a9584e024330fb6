package ports

import "go.trai.ch/deparse/internal/core/domain"

// ManifestLoader defines the interface for reading a project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and decodes the manifest at path.
	Load(path string) (*domain.Manifest, error)
}
