package index_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/engine/index"
	"go.uber.org/mock/gomock"
)

var observes = domain.NewAnnotation("Observes")

// reloadableAndStable returns a reloadable type R with method m and a stable type S
// with method n, both annotated with @Observes, plus the classpath view of both.
func reloadableAndStable() (r, s *domain.Type, stable []*domain.Method) {
	spec := func(name, method string) domain.TypeSpec {
		return domain.TypeSpec{
			Name:    name,
			Methods: []domain.MethodSpec{{Name: method, Annotations: []string{"Observes"}}},
		}
	}
	r = domain.NewType(spec("com.acme.app.R", "m"))
	s = domain.NewType(spec("com.lib.S", "n"))

	// The classpath sweep sees compiled copies, not the live objects.
	stableR := domain.NewType(spec("com.acme.app.R", "m"))
	stableS := domain.NewType(spec("com.lib.S", "n"))
	stable = []*domain.Method{stableR.Methods()[0], stableS.Methods()[0]}
	return r, s, stable
}

func TestMethods_MergesReloadableAndStable(t *testing.T) {
	r, s, stable := reloadableAndStable()
	f := newFixture(t, r, s)
	f.scanner.EXPECT().MethodsAnnotatedWith(gomock.Any(), observes).Return(stable, nil).Times(1)

	res := f.ix.Methods(context.Background(), domain.Query{
		Annotation: observes,
		Context:    domain.StaticContext("session", "com.acme.app"),
	})

	assert.False(t, res.Partial)
	assert.NoError(t, res.StableErr)
	assert.Equal(t, []string{"com.acme.app.R#m", "com.lib.S#n"}, res.Elements.Names())

	// The reloadable pass wins for elements both passes found.
	got, ok := res.Elements.Get(r.Methods()[0].Key())
	require.True(t, ok)
	assert.Same(t, r.Methods()[0], got)
}

func TestMethods_WithoutContextUsesKnownUniverseOnly(t *testing.T) {
	r, s, _ := reloadableAndStable()
	f := newFixture(t, r, s)
	// No scanner expectations: any sweep fails the test.

	res := f.ix.Methods(context.Background(), domain.Query{Annotation: observes})

	assert.False(t, res.Partial)
	assert.Equal(t, []string{"com.acme.app.R#m", "com.lib.S#n"}, res.Elements.Names())
}

func TestTypes_StableHitsAreReclassified(t *testing.T) {
	live := domain.NewType(domain.TypeSpec{Name: "com.acme.app.Live", Annotations: []string{"Entity"}})
	plain := domain.NewType(domain.TypeSpec{Name: "com.acme.app.Plain"})
	known := domain.NewType(domain.TypeSpec{Name: "com.lib.Known", Annotations: []string{"Entity"}})
	f := newFixture(t, live, plain, known)

	entity := domain.NewAnnotation("Entity")
	f.scanner.EXPECT().TypesAnnotatedWith(gomock.Any(), entity).Return([]*domain.Type{
		// Annotation removed in the live copy: the reloadable pass is authoritative.
		domain.NewType(domain.TypeSpec{Name: "com.acme.app.Plain", Annotations: []string{"Entity"}}),
		// Deleted since the last compile: no longer resolvable.
		domain.NewType(domain.TypeSpec{Name: "com.lib.Gone", Annotations: []string{"Entity"}}),
		domain.NewType(domain.TypeSpec{Name: "com.lib.Known", Annotations: []string{"Entity"}}),
		domain.NullType,
	}, nil)

	res := f.ix.Types(context.Background(), domain.Query{
		Annotation: entity,
		Context:    domain.StaticContext("session", "com.acme.app"),
	})

	assert.Equal(t, []string{"com.acme.app.Live", "com.lib.Known"}, res.Elements.Names())
}

func TestQuery_StableFailureIsPartial(t *testing.T) {
	r, s, _ := reloadableAndStable()
	f := newFixture(t, r, s)
	f.scanner.EXPECT().MethodsAnnotatedWith(gomock.Any(), observes).Return(nil, errors.New("corrupt jar"))
	f.vertex.EXPECT().Log(domain.LogLevelWarn, gomock.Cond(func(msg string) bool {
		return strings.Contains(msg, "corrupt jar")
	})).Times(1)

	res := f.ix.Methods(context.Background(), domain.Query{
		Annotation: observes,
		Context:    domain.StaticContext("session", "com.acme.app"),
	})

	assert.True(t, res.Partial)
	require.Error(t, res.StableErr)
	assert.Contains(t, res.StableErr.Error(), "corrupt jar")
	assert.Equal(t, []string{"com.acme.app.R#m"}, res.Elements.Names())
}

func TestQuery_ForcedStableScanWithoutContext(t *testing.T) {
	known := domain.NewType(domain.TypeSpec{
		Name:   "com.acme.app.Widget",
		Fields: []domain.FieldSpec{{Name: "id", Annotations: []string{"Id"}}},
	})
	classpathOnly := domain.NewType(domain.TypeSpec{
		Name:   "com.lib.Row",
		Fields: []domain.FieldSpec{{Name: "key", Annotations: []string{"Id"}}},
	})
	id := domain.NewAnnotation("Id")

	tests := []struct {
		name string
		ctx  context.Context
		q    domain.Query
	}{
		{name: "query flag", ctx: context.Background(), q: domain.Query{Annotation: id, ForceStableScan: true}},
		{name: "context flag", ctx: index.WithStableScan(context.Background()), q: domain.Query{Annotation: id}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, known)
			f.scanner.EXPECT().FieldsAnnotatedWith(gomock.Any(), id).Return(classpathOnly.Fields(), nil).Times(1)

			res := f.ix.Fields(tt.ctx, tt.q)

			assert.Equal(t, []string{"com.acme.app.Widget#id", "com.lib.Row#key"}, res.Elements.Names())
			assert.Positive(t, f.ix.ScanTime())
		})
	}
}

func TestParameters_Collected(t *testing.T) {
	handler := domain.NewType(domain.TypeSpec{
		Name: "com.acme.app.Handler",
		Methods: []domain.MethodSpec{{
			Name: "handle",
			Parameters: []domain.ParameterSpec{
				{Name: "evt", Annotations: []string{"Named"}},
				{Name: "ctx"},
			},
		}},
	})
	f := newFixture(t, handler)

	res := f.ix.Parameters(context.Background(), domain.Query{Annotation: domain.NewAnnotation("Named")})

	require.Equal(t, 1, res.Elements.Len())
	p := res.Elements.Sorted()[0]
	assert.Equal(t, "com.acme.app.Handler#handle(evt)", p.FullyQualifiedName())
	assert.Equal(t, 0, p.Index())
	assert.Same(t, handler, p.DeclaringType())
}

func TestQuery_FilterSpec(t *testing.T) {
	entity := []string{"Entity"}
	universe := []*domain.Type{
		domain.NewType(domain.TypeSpec{Name: "com.acme.app.User", Annotations: entity}),
		domain.NewType(domain.TypeSpec{Name: "com.acme.app.UserTest", Annotations: entity}),
		domain.NewType(domain.TypeSpec{Name: "com.acme.app.internal.Audit", Annotations: entity}),
		domain.NewType(domain.TypeSpec{Name: "com.acme.billing.Invoice", Annotations: entity}),
		domain.NewType(domain.TypeSpec{Name: "com.acme.app.Plain"}),
	}

	tests := []struct {
		name     string
		packages []string
		exclude  string
		want     []string
	}{
		{
			name: "unrestricted",
			want: []string{"com.acme.app.User", "com.acme.app.UserTest", "com.acme.app.internal.Audit", "com.acme.billing.Invoice"},
		},
		{
			name:     "package allow-list is exact",
			packages: []string{"com.acme.app"},
			want:     []string{"com.acme.app.User", "com.acme.app.UserTest"},
		},
		{
			name:     "package and exclusion both apply",
			packages: []string{"com.acme.app", "com.acme.billing"},
			exclude:  `.*Test`,
			want:     []string{"com.acme.app.User", "com.acme.billing.Invoice"},
		},
		{
			name:    "exclusion must match the whole name",
			exclude: `User`,
			want:    []string{"com.acme.app.User", "com.acme.app.UserTest", "com.acme.app.internal.Audit", "com.acme.billing.Invoice"},
		},
		{
			name:     "empty allow-list keeps nothing",
			packages: []string{},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, universe...)
			filter, err := domain.NewFilterSpec(tt.packages, tt.exclude)
			require.NoError(t, err)

			res := f.ix.Types(context.Background(), domain.Query{
				Annotation: domain.NewAnnotation("Entity"),
				Filter:     filter,
			})

			assert.Equal(t, tt.want, res.Elements.Names())
		})
	}
}
