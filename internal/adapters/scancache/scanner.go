package scancache

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
)

var _ ports.StableScanner = (*Scanner)(nil)

// Scanner is a caching ports.StableScanner.
type Scanner struct {
	cache     *Cache
	next      ports.StableScanner
	namespace string
}

func (s *Scanner) key(kind domain.ElementKind, arg string) string {
	return s.namespace + "|" + kind.String() + "|" + arg
}

// TypesAnnotatedWith implements ports.StableScanner.
func (s *Scanner) TypesAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Type, error) {
	return fetch(ctx, s.cache, s.key(domain.KindType, "@"+a.String()), func(ctx context.Context) ([]*domain.Type, error) {
		return s.next.TypesAnnotatedWith(ctx, a)
	})
}

// MethodsAnnotatedWith implements ports.StableScanner.
func (s *Scanner) MethodsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Method, error) {
	return fetch(ctx, s.cache, s.key(domain.KindMethod, "@"+a.String()), func(ctx context.Context) ([]*domain.Method, error) {
		return s.next.MethodsAnnotatedWith(ctx, a)
	})
}

// FieldsAnnotatedWith implements ports.StableScanner.
func (s *Scanner) FieldsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Field, error) {
	return fetch(ctx, s.cache, s.key(domain.KindField, "@"+a.String()), func(ctx context.Context) ([]*domain.Field, error) {
		return s.next.FieldsAnnotatedWith(ctx, a)
	})
}

// ParametersAnnotatedWith implements ports.StableScanner.
func (s *Scanner) ParametersAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Parameter, error) {
	return fetch(ctx, s.cache, s.key(domain.KindParameter, "@"+a.String()), func(ctx context.Context) ([]*domain.Parameter, error) {
		return s.next.ParametersAnnotatedWith(ctx, a)
	})
}

// SubtypesOf implements ports.StableScanner.
func (s *Scanner) SubtypesOf(ctx context.Context, root *domain.Type) ([]*domain.Type, error) {
	return fetch(ctx, s.cache, s.key(domain.KindType, "<:"+root.Erased().FullyQualifiedName()), func(ctx context.Context) ([]*domain.Type, error) {
		return s.next.SubtypesOf(ctx, root)
	})
}
