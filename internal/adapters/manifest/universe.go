package manifest

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
)

// Universe is a program universe loaded from a manifest. It serves both as the
// metadata provider for known types and as the stable scanner over the classpath,
// which is the known types plus the classpath-only ones.
type Universe struct {
	known      []*domain.Type
	byName     map[string]*domain.Type
	classpath  []*domain.Type
	resolvable map[string]*domain.Type
	reloadable []string
	digest     uint64
}

// AllTypes implements ports.MetadataProvider.
func (u *Universe) AllTypes() []*domain.Type { return u.known }

// Lookup implements ports.MetadataProvider.
func (u *Universe) Lookup(fqn string) (*domain.Type, bool) {
	t, ok := u.byName[fqn]
	return t, ok
}

// IsKnownType implements ports.MetadataProvider.
func (u *Universe) IsKnownType(fqn string) bool {
	_, ok := u.byName[fqn]
	return ok
}

// IsAssignableFrom implements ports.MetadataProvider. Supertype chains are followed
// through every type the classpath can resolve; cycles are tolerated.
func (u *Universe) IsAssignableFrom(root, candidate *domain.Type) bool {
	if root.IsNull() || candidate.IsNull() {
		return false
	}
	target := root.Erased().FullyQualifiedName()
	seen := make(map[string]struct{})
	stack := []*domain.Type{candidate.Erased()}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := t.FullyQualifiedName()
		if name == target {
			return true
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		for _, super := range t.Supertypes() {
			if super.String() == target {
				return true
			}
			if next, ok := u.resolvable[super.String()]; ok {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Digest fingerprints the manifest bytes.
func (u *Universe) Digest() uint64 { return u.digest }

// ReloadablePackages implements ports.ReloadablePackageProvider.
func (u *Universe) ReloadablePackages(_ context.Context) ([]string, error) {
	return u.reloadable, nil
}

// TypesAnnotatedWith implements ports.StableScanner.
func (u *Universe) TypesAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Type, error) {
	return sweep(ctx, u.classpath, func(t *domain.Type, yield func(*domain.Type)) {
		if t.HasAnnotation(a) {
			yield(t)
		}
	})
}

// MethodsAnnotatedWith implements ports.StableScanner.
func (u *Universe) MethodsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Method, error) {
	return sweep(ctx, u.classpath, func(t *domain.Type, yield func(*domain.Method)) {
		for _, m := range t.Methods() {
			if m.HasAnnotation(a) {
				yield(m)
			}
		}
	})
}

// FieldsAnnotatedWith implements ports.StableScanner.
func (u *Universe) FieldsAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Field, error) {
	return sweep(ctx, u.classpath, func(t *domain.Type, yield func(*domain.Field)) {
		for _, f := range t.Fields() {
			if f.HasAnnotation(a) {
				yield(f)
			}
		}
	})
}

// ParametersAnnotatedWith implements ports.StableScanner.
func (u *Universe) ParametersAnnotatedWith(ctx context.Context, a domain.Annotation) ([]*domain.Parameter, error) {
	return sweep(ctx, u.classpath, func(t *domain.Type, yield func(*domain.Parameter)) {
		for _, m := range t.Methods() {
			for _, p := range m.Parameters() {
				if p.HasAnnotation(a) {
					yield(p)
				}
			}
		}
	})
}

// SubtypesOf implements ports.StableScanner. The root itself is not reported.
func (u *Universe) SubtypesOf(ctx context.Context, root *domain.Type) ([]*domain.Type, error) {
	rootName := root.Erased().FullyQualifiedName()
	return sweep(ctx, u.classpath, func(t *domain.Type, yield func(*domain.Type)) {
		if t.FullyQualifiedName() != rootName && u.IsAssignableFrom(root, t) {
			yield(t)
		}
	})
}

// sweep visits every classpath type, stopping early if ctx is done.
func sweep[E any](ctx context.Context, types []*domain.Type, visit func(*domain.Type, func(E))) ([]E, error) {
	var out []E
	yield := func(e E) { out = append(out, e) }
	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		visit(t, yield)
	}
	return out, nil
}
