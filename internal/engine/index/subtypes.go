package index

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/engine/registry"
	"go.trai.ch/zerr"
)

type closure struct {
	set     domain.Set[*domain.Type]
	partial bool
}

// Subtypes returns the strict subtypes of root's erasure, excluding anonymous and
// synthetic types. Closures are memoized per root until Invalidate or the registry's
// ClearAll; closures missing the stable contribution are returned but not memoized.
// Only a failure to obtain the subtype store is returned as an error.
func (ix *Index) Subtypes(ctx context.Context, root *domain.Type, cctx *domain.CompilationContext) (domain.Set[*domain.Type], error) {
	if root.IsNull() {
		return domain.NewSet[*domain.Type](), nil
	}
	root = root.Erased()

	store, err := registry.Get[*SubtypeStore](ix.registry)
	if err != nil {
		return domain.Set[*domain.Type]{}, err
	}
	if set, ok := store.Load(ix.namespace, root); ok {
		return set, nil
	}

	key := root.FullyQualifiedName()
	if cctx != nil {
		key = cctx.ID() + "|" + key
	}
	// Coalesced callers share one computation, so no single caller may cancel it.
	shared := context.WithoutCancel(ctx)
	v, _, _ := ix.subtypeCalls.Do(key, func() (any, error) {
		if set, ok := store.Load(ix.namespace, root); ok {
			return closure{set: set}, nil
		}
		c := ix.computeSubtypes(shared, root, cctx)
		if !c.partial {
			store.Store(ix.namespace, root, c.set)
		}
		return c, nil
	})
	return v.(closure).set, nil
}

// Invalidate forgets the memoized closure of root, if any.
func (ix *Index) Invalidate(root *domain.Type) error {
	if root.IsNull() {
		return nil
	}
	store, err := registry.Get[*SubtypeStore](ix.registry)
	if err != nil {
		return err
	}
	store.Delete(ix.namespace, root.Erased())
	return nil
}

func (ix *Index) computeSubtypes(ctx context.Context, root *domain.Type, cctx *domain.CompilationContext) closure {
	b := domain.NewSetBuilder[*domain.Type](0)
	accept := func(t *domain.Type) {
		if t.IsNull() || t.IsAnonymous() || t.IsSynthetic() {
			return
		}
		t = t.Erased()
		if t.Key() == root.Key() {
			return
		}
		b.Add(t)
	}

	if !ix.skipReloadableSubtypes.Load() {
		candidates := ix.metadata.AllTypes()
		if cctx != nil {
			candidates = cctx.ReloadableTypes(candidates)
		}
		for _, t := range candidates {
			if !t.IsNull() && ix.metadata.IsAssignableFrom(root, t) {
				accept(t)
			}
		}
	}

	vctx, vertex := ix.telemetry.Record(ctx, "subtypes "+root.FullyQualifiedName())
	start := time.Now()
	hits, err := ix.scanner.SubtypesOf(vctx, root)
	ix.scanNanos.Add(int64(time.Since(start)))
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrStableScanFailed.Error()), "type", root.FullyQualifiedName())
		msg := fmt.Sprintf("stable subtype scan for %s failed, using in-memory results only: %v", root.FullyQualifiedName(), err)
		ix.logger.Warn(msg)
		vertex.Log(domain.LogLevelWarn, msg)
	}
	vertex.Complete(err)
	for _, t := range hits {
		accept(t)
	}

	return closure{set: b.Set(), partial: err != nil}
}
