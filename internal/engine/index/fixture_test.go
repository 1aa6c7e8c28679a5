package index_test

import (
	"context"
	"testing"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/rebind/internal/engine/index"
	"go.trai.ch/rebind/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	meta    *mocks.MockMetadataProvider
	scanner *mocks.MockStableScanner
	logger  *mocks.MockLogger
	vertex  *mocks.MockVertex
	reg     *registry.Registry
	ix      *index.Index
}

// newFixture builds an Index whose metadata provider knows exactly types.
// The scanner has no expectations and the vertex expects no log lines; tests add the
// ones they need.
func newFixture(t *testing.T, types ...*domain.Type) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	byName := make(map[string]*domain.Type, len(types))
	for _, ty := range types {
		byName[ty.FullyQualifiedName()] = ty
	}

	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().AllTypes().Return(types).AnyTimes()
	meta.EXPECT().IsKnownType(gomock.Any()).DoAndReturn(func(fqn string) bool {
		_, ok := byName[fqn]
		return ok
	}).AnyTimes()
	meta.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(fqn string) (*domain.Type, bool) {
		ty, ok := byName[fqn]
		return ty, ok
	}).AnyTimes()
	meta.EXPECT().IsAssignableFrom(gomock.Any(), gomock.Any()).DoAndReturn(func(root, candidate *domain.Type) bool {
		return assignable(byName, root.Erased().FullyQualifiedName(), candidate.Erased(), map[string]bool{})
	}).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		},
	).AnyTimes()

	scanner := mocks.NewMockStableScanner(ctrl)
	reg := registry.New(logger)

	return &fixture{
		meta:    meta,
		scanner: scanner,
		logger:  logger,
		vertex:  vertex,
		reg:     reg,
		ix:      index.New(meta, scanner, reg, logger, tel, 1),
	}
}

func assignable(byName map[string]*domain.Type, root string, candidate *domain.Type, seen map[string]bool) bool {
	name := candidate.FullyQualifiedName()
	if name == root {
		return true
	}
	if seen[name] {
		return false
	}
	seen[name] = true
	for _, super := range candidate.Supertypes() {
		if super.String() == root {
			return true
		}
		if next, ok := byName[super.String()]; ok && assignable(byName, root, next, seen) {
			return true
		}
	}
	return false
}

func typ(name string, supertypes ...string) *domain.Type {
	return domain.NewType(domain.TypeSpec{Name: name, Supertypes: supertypes})
}
