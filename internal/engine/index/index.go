// Package index implements the annotation index over reloadable and stable program elements.
package index

import (
	"context"
	"sync/atomic"
	"time"

	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/engine/registry"
	"golang.org/x/sync/singleflight"
)

// Index answers annotation and subtype queries by merging a live pass over the
// reloadable elements of a build session with a stable classpath sweep.
//
// Index itself holds no per-query state. The subtype memo lives in a registry store and
// reloadable classification lives in each CompilationContext.
type Index struct {
	metadata  ports.MetadataProvider
	scanner   ports.StableScanner
	registry  *registry.Registry
	logger    ports.Logger
	telemetry ports.Telemetry
	// namespace separates this index's subtype closures from those of other universes
	// sharing the registry.
	namespace uint64

	skipReloadableSubtypes atomic.Bool
	scanNanos              atomic.Int64
	subtypeCalls           singleflight.Group
}

// New creates an Index over the given collaborators. namespace identifies the universe
// behind metadata and scanner; indexes over different universes must use different ones.
func New(
	metadata ports.MetadataProvider,
	scanner ports.StableScanner,
	reg *registry.Registry,
	logger ports.Logger,
	telemetry ports.Telemetry,
	namespace uint64,
) *Index {
	return &Index{
		metadata:  metadata,
		scanner:   scanner,
		registry:  reg,
		logger:    logger,
		telemetry: telemetry,
		namespace: namespace,
	}
}

// SetSkipReloadableSubtypes toggles the escape hatch that disables the in-memory pass
// of subtype lookups.
func (ix *Index) SetSkipReloadableSubtypes(skip bool) {
	ix.skipReloadableSubtypes.Store(skip)
}

// ScanTime returns the cumulative wall time spent in stable classpath sweeps.
func (ix *Index) ScanTime() time.Duration {
	return time.Duration(ix.scanNanos.Load())
}

type stableScanKey struct{}

// WithStableScan marks ctx so that queries without a compilation context still
// consult the stable classpath sweep.
func WithStableScan(ctx context.Context) context.Context {
	return context.WithValue(ctx, stableScanKey{}, true)
}

func stableScanRequested(ctx context.Context) bool {
	v, _ := ctx.Value(stableScanKey{}).(bool)
	return v
}
