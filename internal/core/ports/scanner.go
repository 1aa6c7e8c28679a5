package ports

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
)

// StableScanner sweeps the compiled classpath. A sweep is expensive and may fail for
// reasons outside the index's control (I/O, broken classpath entries).
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type StableScanner interface {
	// TypesAnnotatedWith returns every type carrying the annotation.
	TypesAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Type, error)

	// MethodsAnnotatedWith returns every method carrying the annotation.
	MethodsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Method, error)

	// FieldsAnnotatedWith returns every field carrying the annotation.
	FieldsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Field, error)

	// ParametersAnnotatedWith returns every method parameter carrying the annotation.
	ParametersAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Parameter, error)

	// SubtypesOf returns the transitive subtypes of root, possibly including
	// anonymous and synthetic types.
	SubtypesOf(ctx context.Context, root *domain.Type) ([]*domain.Type, error)
}
