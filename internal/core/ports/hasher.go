package ports

// Hasher defines the interface for fingerprinting input files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash returns a single hash over the names and contents of paths, in order.
	ComputeInputHash(paths []string) (string, error)
}
