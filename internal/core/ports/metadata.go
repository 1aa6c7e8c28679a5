// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rebind/internal/core/domain"

// MetadataProvider is the reflective view of every type currently known to the build.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataProvider interface {
	// AllTypes returns every known type. Callers must not modify the slice.
	AllTypes() []*domain.Type

	// Lookup resolves a fully-qualified (raw) type name.
	Lookup(fqn string) (*domain.Type, bool)

	// IsKnownType reports whether fqn resolves in the current universe.
	IsKnownType(fqn string) bool

	// IsAssignableFrom reports whether candidate is root or a transitive subtype of root.
	IsAssignableFrom(root, candidate *domain.Type) bool
}
