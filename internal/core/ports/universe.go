package ports

// Universe is a loaded program universe: the known metadata plus the stable classpath.
type Universe interface {
	MetadataProvider
	StableScanner

	// Digest fingerprints the universe source so caches can be namespaced by it.
	Digest() uint64
}

// UniverseLoader loads a Universe from a manifest file.
//
//go:generate go run go.uber.org/mock/mockgen -source=universe.go -destination=mocks/mock_universe.go -package=mocks
type UniverseLoader interface {
	Load(path string) (Universe, error)
}
