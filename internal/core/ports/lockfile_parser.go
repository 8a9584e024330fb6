package ports

import "go.trai.ch/deparse/internal/core/domain"

// LockfileParser defines the interface for reading a resolved lock file.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile_parser.go -destination=mocks/mock_lockfile_parser.go -package=mocks
type LockfileParser interface {
	// Parse reads the lock file at path into an ordered lock table.
	Parse(path string) (*domain.LockTable, error)
}
