package app

import (
	"context"
	"runtime"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/engine/index"
	"go.trai.ch/rebind/internal/engine/registry"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Workspace is an opened universe with its index and build session.
type Workspace struct {
	settings *domain.Settings
	universe ports.Universe
	index    *index.Index
	session  *domain.CompilationContext
	registry *registry.Registry
}

// Request is one annotation lookup.
type Request struct {
	Kind       domain.ElementKind
	Annotation string
	// Packages restricts results to these packages; nil means any package.
	Packages []string
	Exclude  string
	// NoSession queries as if no incremental build were in progress.
	NoSession bool
	// ForceStable adds the classpath sweep to a query without a session.
	ForceStable bool
}

// Response is the outcome of a Request.
type Response struct {
	Kind      domain.ElementKind
	Names     []string
	Partial   bool
	StableErr error
}

// Settings returns the loaded settings.
func (w *Workspace) Settings() *domain.Settings { return w.settings }

// Session returns the compilation context of the workspace.
func (w *Workspace) Session() *domain.CompilationContext { return w.session }

// Index returns the annotation index of the workspace.
func (w *Workspace) Index() *index.Index { return w.index }

// Annotated runs one annotation lookup. Only an invalid filter fails the call.
func (w *Workspace) Annotated(ctx context.Context, req Request) (Response, error) {
	filter, err := domain.NewFilterSpec(req.Packages, req.Exclude)
	if err != nil {
		return Response{}, err
	}
	q := domain.Query{
		Annotation:      domain.NewAnnotation(req.Annotation),
		Filter:          filter,
		ForceStableScan: req.ForceStable,
	}
	if !req.NoSession {
		q.Context = w.session
	}

	switch req.Kind {
	case domain.KindType:
		return respond(req.Kind, w.index.Types(ctx, q)), nil
	case domain.KindMethod:
		return respond(req.Kind, w.index.Methods(ctx, q)), nil
	case domain.KindField:
		return respond(req.Kind, w.index.Fields(ctx, q)), nil
	case domain.KindParameter:
		return respond(req.Kind, w.index.Parameters(ctx, q)), nil
	default:
		return Response{}, zerr.With(zerr.Wrap(domain.ErrUnknownElementKind, "failed to dispatch request"), "kind", req.Kind.String())
	}
}

func respond[E domain.Element](kind domain.ElementKind, res domain.Result[E]) Response {
	return Response{
		Kind:      kind,
		Names:     res.Elements.Names(),
		Partial:   res.Partial,
		StableErr: res.StableErr,
	}
}

// Subtypes returns the sorted names of the strict subtypes of the known type fqn.
func (w *Workspace) Subtypes(ctx context.Context, fqn string, noSession bool) ([]string, error) {
	root, ok := w.universe.Lookup(fqn)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "failed to resolve root type"), "type", fqn)
	}
	var session *domain.CompilationContext
	if !noSession {
		session = w.session
	}
	set, err := w.index.Subtypes(ctx, root, session)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to compute subtypes"), "type", fqn)
	}
	return set.Names(), nil
}

// Batch runs requests concurrently. Responses are in request order.
func (w *Workspace) Batch(ctx context.Context, reqs []Request) ([]Response, error) {
	out := make([]Response, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		g.Go(func() error {
			res, err := w.Annotated(gctx, req)
			if err != nil {
				return zerr.With(err, "request", i)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Invalidate forgets the memoized subtypes of the known type fqn.
func (w *Workspace) Invalidate(fqn string) error {
	root, ok := w.universe.Lookup(fqn)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrTypeNotFound, "failed to resolve root type"), "type", fqn)
	}
	return w.index.Invalidate(root)
}

// ClearCaches resets every registry cache, including cached sweeps and subtype closures.
func (w *Workspace) ClearCaches() {
	w.registry.ClearAll()
}
