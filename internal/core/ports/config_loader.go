package ports

import "go.trai.ch/deparse/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, applying environment overrides.
	// A missing file yields the defaults.
	Load(path string) (domain.Config, error)
}
