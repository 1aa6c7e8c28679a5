package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/manifest"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const sample = `
reloadable: [com.acme.app]
types:
  - name: com.acme.core.Component
    annotations: [Contract]
  - name: com.acme.app.Widget
    supertypes: [com.acme.core.Component]
    annotations: [Entity]
    fields:
      - {name: id, annotations: [Id]}
    methods:
      - name: render
        annotations: [Observes]
        parameters:
          - {name: evt, annotations: [Named]}
          - {name: ctx}
  - name: com.acme.app.Button
    supertypes: [com.acme.app.Widget]
  - name: com.acme.app.Widget$1
    supertypes: [com.acme.app.Widget]
    anonymous: true
classpath:
  - name: com.lib.Panel
    supertypes: [com.lib.Base]
    annotations: [Entity]
  - name: com.lib.Base
    supertypes: [com.acme.core.Component]
  - name: com.lib.Loop
    supertypes: [com.lib.Loop2]
  - name: com.lib.Loop2
    supertypes: [com.lib.Loop]
`

func parse(t *testing.T) *manifest.Universe {
	t.Helper()
	u, err := manifest.Parse([]byte(sample))
	require.NoError(t, err)
	return u
}

func names[E domain.Element](elems []E) []string {
	return domain.NewSet(elems...).Names()
}

func TestParse_Metadata(t *testing.T) {
	u := parse(t)

	assert.Len(t, u.AllTypes(), 4)
	assert.True(t, u.IsKnownType("com.acme.app.Widget"))
	assert.False(t, u.IsKnownType("com.lib.Panel"), "classpath-only types are not known metadata")

	widget, ok := u.Lookup("com.acme.app.Widget")
	require.True(t, ok)
	assert.Equal(t, "com.acme.app", widget.PackageName())

	prefixes, err := u.ReloadablePackages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.app"}, prefixes)
}

func TestUniverse_IsAssignableFrom(t *testing.T) {
	u := parse(t)
	component, _ := u.Lookup("com.acme.core.Component")
	widget, _ := u.Lookup("com.acme.app.Widget")
	button, _ := u.Lookup("com.acme.app.Button")

	assert.True(t, u.IsAssignableFrom(component, button))
	assert.True(t, u.IsAssignableFrom(widget, widget))
	assert.True(t, u.IsAssignableFrom(component, button.Parameterize("T")))
	assert.False(t, u.IsAssignableFrom(button, component))
	assert.False(t, u.IsAssignableFrom(domain.NullType, button))

	loop := domain.NewType(domain.TypeSpec{Name: "com.lib.Loop", Supertypes: []string{"com.lib.Loop2"}})
	assert.False(t, u.IsAssignableFrom(component, loop), "cycles terminate")
}

func TestUniverse_Sweeps(t *testing.T) {
	u := parse(t)
	ctx := context.Background()

	types, err := u.TypesAnnotatedWith(ctx, domain.NewAnnotation("Entity"))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.app.Widget", "com.lib.Panel"}, names(types))

	methods, err := u.MethodsAnnotatedWith(ctx, domain.NewAnnotation("Observes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.app.Widget#render"}, names(methods))

	fields, err := u.FieldsAnnotatedWith(ctx, domain.NewAnnotation("Id"))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.app.Widget#id"}, names(fields))

	params, err := u.ParametersAnnotatedWith(ctx, domain.NewAnnotation("Named"))
	require.NoError(t, err)
	assert.Equal(t, []string{"com.acme.app.Widget#render(evt)"}, names(params))
}

func TestUniverse_SubtypesOf(t *testing.T) {
	u := parse(t)
	component, _ := u.Lookup("com.acme.core.Component")

	subs, err := u.SubtypesOf(context.Background(), component)
	require.NoError(t, err)

	// The sweep reports anonymous types too; the index filters them.
	assert.Equal(t, []string{
		"com.acme.app.Button",
		"com.acme.app.Widget",
		"com.acme.app.Widget$1",
		"com.lib.Base",
		"com.lib.Panel",
	}, names(subs))
}

func TestUniverse_SweepHonorsCancellation(t *testing.T) {
	u := parse(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := u.TypesAnnotatedWith(ctx, domain.NewAnnotation("Entity"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "malformed", content: "types: {", want: "failed to parse manifest"},
		{name: "duplicate across sections", content: "types: [{name: a.B}]\nclasspath: [{name: a.B}]\n", want: domain.ErrDuplicateType.Error()},
		{name: "unnamed", content: "types: [{package: a}]\n", want: "without a name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_DuplicateType(t *testing.T) {
	_, err := manifest.Parse([]byte("types: [{name: a.B}, {name: a.B}]\n"))
	require.ErrorIs(t, err, domain.ErrDuplicateType)

	var zerrErr *zerr.Error
	require.ErrorAs(t, err, &zerrErr)
	assert.Equal(t, "a.B", zerrErr.Metadata()["type"])
}

func TestParse_DuplicateMember(t *testing.T) {
	tests := []struct {
		name    string
		content string
		member  string
	}{
		{
			name:    "overloaded method",
			content: "types: [{name: a.B, methods: [{name: m}, {name: m, parameters: [{name: x}]}]}]\n",
			member:  "method a.B#m",
		},
		{
			name:    "repeated parameter",
			content: "types: [{name: a.B, methods: [{name: m, parameters: [{name: x}, {name: x}]}]}]\n",
			member:  "parameter a.B#m(x)",
		},
		{
			name:    "repeated field",
			content: "classpath: [{name: a.B, fields: [{name: id}, {name: id}]}]\n",
			member:  "field a.B#id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.content))
			require.ErrorIs(t, err, domain.ErrDuplicateMember)

			var zerrErr *zerr.Error
			require.ErrorAs(t, err, &zerrErr)
			assert.Equal(t, tt.member, zerrErr.Metadata()["member"])
		})
	}

	_, err := manifest.Parse([]byte("types: [{name: a.B, methods: [{name: m}], fields: [{name: m}]}]\n"))
	require.NoError(t, err, "a field may share its name with a method")
}

func TestParse_DigestTracksContent(t *testing.T) {
	a, err := manifest.Parse([]byte("types: [{name: a.B}]\n"))
	require.NoError(t, err)
	b, err := manifest.Parse([]byte("types: [{name: a.B}]\n"))
	require.NoError(t, err)
	c, err := manifest.Parse([]byte("types: [{name: a.C}]\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)
	loader := manifest.NewLoader(log)

	path := filepath.Join(t.TempDir(), "universe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	u, err := loader.Load(path)
	require.NoError(t, err)
	assert.Len(t, u.AllTypes(), 4)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Contains(t, zErr.Metadata(), "path")
}
