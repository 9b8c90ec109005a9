package ports

// AtomicWriter persists files crash-safely. On success the destination
// contains exactly the given bytes; no partial or corrupt state is ever
// observable by a concurrent reader. On failure the destination is left
// untouched.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type AtomicWriter interface {
	// WriteFile atomically replaces path with data.
	WriteFile(path string, data []byte) error

	// WriteFileIfChanged atomically replaces path with data unless the file
	// already holds identical content. It reports whether a write happened.
	WriteFileIfChanged(path string, data []byte) (bool, error)
}
