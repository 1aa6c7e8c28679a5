package index

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// kindOps adapts the shared query algorithm to one element kind.
type kindOps[E domain.Element] struct {
	kind domain.ElementKind
	// collect yields the elements declared by t that carry a.
	collect func(t *domain.Type, a domain.Annotation, yield func(E))
	// stable runs the classpath sweep for a.
	stable func(ctx context.Context, s ports.StableScanner, a domain.Annotation) ([]E, error)
}

var typeOps = kindOps[*domain.Type]{
	kind: domain.KindType,
	collect: func(t *domain.Type, a domain.Annotation, yield func(*domain.Type)) {
		if t.HasAnnotation(a) {
			yield(t)
		}
	},
	stable: func(ctx context.Context, s ports.StableScanner, a domain.Annotation) ([]*domain.Type, error) {
		return s.TypesAnnotatedWith(ctx, a)
	},
}

var methodOps = kindOps[*domain.Method]{
	kind: domain.KindMethod,
	collect: func(t *domain.Type, a domain.Annotation, yield func(*domain.Method)) {
		for _, m := range t.Methods() {
			if m.HasAnnotation(a) {
				yield(m)
			}
		}
	},
	stable: func(ctx context.Context, s ports.StableScanner, a domain.Annotation) ([]*domain.Method, error) {
		return s.MethodsAnnotatedWith(ctx, a)
	},
}

var fieldOps = kindOps[*domain.Field]{
	kind: domain.KindField,
	collect: func(t *domain.Type, a domain.Annotation, yield func(*domain.Field)) {
		for _, f := range t.Fields() {
			if f.HasAnnotation(a) {
				yield(f)
			}
		}
	},
	stable: func(ctx context.Context, s ports.StableScanner, a domain.Annotation) ([]*domain.Field, error) {
		return s.FieldsAnnotatedWith(ctx, a)
	},
}

var parameterOps = kindOps[*domain.Parameter]{
	kind: domain.KindParameter,
	collect: func(t *domain.Type, a domain.Annotation, yield func(*domain.Parameter)) {
		for _, m := range t.Methods() {
			for _, p := range m.Parameters() {
				if p.HasAnnotation(a) {
					yield(p)
				}
			}
		}
	},
	stable: func(ctx context.Context, s ports.StableScanner, a domain.Annotation) ([]*domain.Parameter, error) {
		return s.ParametersAnnotatedWith(ctx, a)
	},
}

// Types returns the types carrying q.Annotation.
func (ix *Index) Types(ctx context.Context, q domain.Query) domain.Result[*domain.Type] {
	return query(ctx, ix, typeOps, q)
}

// Methods returns the methods carrying q.Annotation.
func (ix *Index) Methods(ctx context.Context, q domain.Query) domain.Result[*domain.Method] {
	return query(ctx, ix, methodOps, q)
}

// Fields returns the fields carrying q.Annotation.
func (ix *Index) Fields(ctx context.Context, q domain.Query) domain.Result[*domain.Field] {
	return query(ctx, ix, fieldOps, q)
}

// Parameters returns the method parameters carrying q.Annotation.
func (ix *Index) Parameters(ctx context.Context, q domain.Query) domain.Result[*domain.Parameter] {
	return query(ctx, ix, parameterOps, q)
}

func query[E domain.Element](ctx context.Context, ix *Index, ops kindOps[E], q domain.Query) domain.Result[E] {
	cctx := q.Context

	var live []E
	var hits []E
	var stableErr error

	var g errgroup.Group
	g.Go(func() error {
		candidates := ix.metadata.AllTypes()
		if cctx != nil {
			candidates = cctx.ReloadableTypes(candidates)
		}
		for _, t := range candidates {
			ops.collect(t, q.Annotation, func(e E) { live = append(live, e) })
		}
		return nil
	})
	if cctx != nil || q.ForceStableScan || stableScanRequested(ctx) {
		g.Go(func() error {
			hits, stableErr = stableScan(ctx, ix, ops, q.Annotation)
			return nil
		})
	}
	_ = g.Wait()

	b := domain.NewSetBuilder[E](len(live) + len(hits))
	for _, e := range live {
		b.Add(e)
	}
	for _, e := range hits {
		if cctx != nil && !ix.coveredByStable(cctx, e.DeclaringType()) {
			continue
		}
		b.Add(e)
	}
	domain.Apply(b, q.Filter)

	return domain.Result[E]{
		Elements:  b.Set(),
		Partial:   stableErr != nil,
		StableErr: stableErr,
	}
}

// coveredByStable reports whether a stable hit declared by t belongs in a session result:
// its package is not being recompiled and the type still resolves.
func (ix *Index) coveredByStable(cctx *domain.CompilationContext, t *domain.Type) bool {
	if t.IsNull() || cctx.IsReloadable(t) {
		return false
	}
	return ix.metadata.IsKnownType(t.Erased().FullyQualifiedName())
}

// stableScan runs the classpath sweep for one kind under a telemetry vertex.
// Failures are logged and returned, never raised to the caller of the query.
func stableScan[E domain.Element](ctx context.Context, ix *Index, ops kindOps[E], a domain.Annotation) ([]E, error) {
	vctx, vertex := ix.telemetry.Record(ctx, fmt.Sprintf("scan %s @%s", ops.kind, a))
	start := time.Now()
	hits, err := ops.stable(vctx, ix.scanner, a)
	ix.scanNanos.Add(int64(time.Since(start)))

	if err != nil {
		err = zerr.With(zerr.With(zerr.Wrap(err, domain.ErrStableScanFailed.Error()), "kind", ops.kind.String()), "annotation", a.String())
		msg := fmt.Sprintf("stable scan for %s @%s failed, using in-memory results only: %v", ops.kind, a, err)
		ix.logger.Warn(msg)
		vertex.Log(domain.LogLevelWarn, msg)
		vertex.Complete(err)
		return nil, err
	}
	vertex.Complete(nil)
	return hits, nil
}
