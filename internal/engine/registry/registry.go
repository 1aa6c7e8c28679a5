// Package registry implements the process-wide typed cache registry.
//
// Every cache kind is backed by exactly one Store instance. Construction is exclusive
// per kind while lookups and constructions of other kinds proceed independently.
// ClearAll resets every instance without discarding it.
package registry

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	lockWaitWarnThreshold = 5 * time.Millisecond
	slowAcquireThreshold  = 20 * time.Millisecond
)

// Store is the capability every cache instance provides.
type Store interface {
	// Clear resets the store to its post-construction state.
	Clear()
}

// Initializer is implemented by stores that need work after default construction.
type Initializer interface {
	Init() error
}

// Kind identifies a cache implementation by its Go type.
type Kind struct {
	t reflect.Type
}

// KindOf returns the Kind for store type T, usually a pointer to a struct.
func KindOf[T Store]() Kind {
	return Kind{t: reflect.TypeFor[T]()}
}

// String returns the type name of the kind.
func (k Kind) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// Factory constructs the store for a kind.
type Factory func() (Store, error)

// ConstructionError reports that a kind could not be instantiated.
// It matches domain.ErrCacheConstruction under errors.Is.
type ConstructionError struct {
	Kind  Kind
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", domain.ErrCacheConstruction.Error(), e.Kind, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// Is matches domain.ErrCacheConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == domain.ErrCacheConstruction
}

type slot struct {
	mu    sync.Mutex
	store Store
	// dead marks a slot whose construction failed and that has left the map.
	dead bool
}

// Registry maps cache kinds to their single instance.
type Registry struct {
	slots     *xsync.MapOf[Kind, *slot]
	factories *xsync.MapOf[Kind, Factory]
	clearMu   sync.Mutex
	logger    ports.Logger

	acquireNanos atomic.Int64
}

// New creates an empty Registry.
func New(logger ports.Logger) *Registry {
	return &Registry{
		slots:     xsync.NewMapOf[Kind, *slot](),
		factories: xsync.NewMapOf[Kind, Factory](),
		logger:    logger,
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it with logger on first use.
// Later calls ignore the logger argument.
func Default(logger ports.Logger) *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(logger)
	})
	return defaultRegistry
}

// Provide registers a factory for kind T. It replaces any earlier factory but never
// affects an instance that was already constructed.
func Provide[T Store](r *Registry, fn func() (T, error)) {
	r.factories.Store(KindOf[T](), func() (Store, error) {
		return fn()
	})
}

// Get is the typed form of GetOrCreate.
func Get[T Store](r *Registry) (T, error) {
	s, err := r.GetOrCreate(KindOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return s.(T), nil
}

// GetOrCreate returns the instance for kind, constructing it on first use.
// Concurrent callers for the same kind wait for a single construction.
func (r *Registry) GetOrCreate(kind Kind) (Store, error) {
	start := time.Now()
	defer func() {
		r.acquireNanos.Add(int64(time.Since(start)))
	}()

	for {
		s, _ := r.slots.LoadOrCompute(kind, func() *slot { return &slot{} })

		s.mu.Lock()
		if wait := time.Since(start); wait > lockWaitWarnThreshold {
			r.logger.Warn(fmt.Sprintf("waited %s for cache lock of %s", wait, kind))
		}
		if s.dead {
			s.mu.Unlock()
			continue
		}
		if s.store != nil {
			store := s.store
			s.mu.Unlock()
			return store, nil
		}

		store, err := r.construct(kind)
		if err != nil {
			s.dead = true
			r.slots.Compute(kind, func(old *slot, loaded bool) (*slot, bool) {
				return old, !loaded || old == s
			})
			s.mu.Unlock()
			return nil, err
		}
		s.store = store
		s.mu.Unlock()

		elapsed := time.Since(start)
		r.logger.Warn(fmt.Sprintf("constructed cache %s in %s (total acquire time %s)",
			kind, elapsed, r.TotalAcquireTime()+elapsed))
		if elapsed > slowAcquireThreshold {
			r.logger.Warn(fmt.Sprintf("cache %s took too long to construct", kind))
		}
		return store, nil
	}
}

func (r *Registry) construct(kind Kind) (store Store, err error) {
	defer func() {
		if p := recover(); p != nil {
			store = nil
			err = &ConstructionError{Kind: kind, Cause: zerr.With(zerr.New("constructor panicked"), "panic", fmt.Sprint(p))}
		}
	}()

	if fn, ok := r.factories.Load(kind); ok {
		s, ferr := fn()
		if ferr != nil {
			return nil, &ConstructionError{Kind: kind, Cause: ferr}
		}
		if isNil(s) {
			return nil, &ConstructionError{Kind: kind, Cause: zerr.New("factory returned nil")}
		}
		return s, nil
	}

	t := kind.t
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, &ConstructionError{Kind: kind, Cause: zerr.New("kind is not default-instantiable")}
	}

	s, ok := reflect.New(t.Elem()).Interface().(Store)
	if !ok {
		return nil, &ConstructionError{Kind: kind, Cause: zerr.New("kind does not implement Store")}
	}
	if init, ok := s.(Initializer); ok {
		if ierr := init.Init(); ierr != nil {
			return nil, &ConstructionError{Kind: kind, Cause: ierr}
		}
	}
	return s, nil
}

func isNil(s Store) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ClearAll calls Clear on every registered instance. Instances stay registered.
// A Clear implementation may call GetOrCreate for a different kind.
func (r *Registry) ClearAll() {
	r.clearMu.Lock()
	defer r.clearMu.Unlock()

	r.logger.Info("clearing all generation caches")

	var slots []*slot
	r.slots.Range(func(_ Kind, s *slot) bool {
		slots = append(slots, s)
		return true
	})

	for _, s := range slots {
		s.mu.Lock()
		store := s.store
		if store != nil {
			store.Clear()
		}
		s.mu.Unlock()
	}
}

// Kinds returns the kinds with a constructed instance, unordered.
func (r *Registry) Kinds() []Kind {
	var kinds []Kind
	r.slots.Range(func(k Kind, s *slot) bool {
		s.mu.Lock()
		ok := s.store != nil
		s.mu.Unlock()
		if ok {
			kinds = append(kinds, k)
		}
		return true
	})
	return kinds
}

// TotalAcquireTime returns the cumulative time spent inside GetOrCreate.
func (r *Registry) TotalAcquireTime() time.Duration {
	return time.Duration(r.acquireNanos.Load())
}
