package ports

import "go.trai.ch/deparse/internal/core/domain"

// ExportInfoStore defines the interface for remembering what each exported file was built from.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExportInfoStore interface {
	// Get retrieves the export info for a target path.
	// Returns nil, nil if not found.
	Get(target string) (*domain.ExportInfo, error)

	// Put stores the export info.
	Put(info domain.ExportInfo) error
}
