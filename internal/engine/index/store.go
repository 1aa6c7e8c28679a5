package index

import (
	"github.com/puzpuzpuz/xsync/v3"
	"go.trai.ch/rebind/internal/core/domain"
)

// subtypeKey scopes a root to the universe it was resolved in.
type subtypeKey struct {
	namespace uint64
	root      domain.ElementKey
}

// SubtypeStore memoizes subtype closures by universe namespace and erased root. It is a
// registry store, so the registry's ClearAll empties it.
type SubtypeStore struct {
	entries *xsync.MapOf[subtypeKey, domain.Set[*domain.Type]]
}

// Init prepares the backing map.
func (s *SubtypeStore) Init() error {
	s.entries = xsync.NewMapOf[subtypeKey, domain.Set[*domain.Type]]()
	return nil
}

// Clear drops every memoized closure.
func (s *SubtypeStore) Clear() {
	s.entries.Clear()
}

// Load returns the memoized closure of root within namespace.
func (s *SubtypeStore) Load(namespace uint64, root *domain.Type) (domain.Set[*domain.Type], bool) {
	return s.entries.Load(subtypeKey{namespace: namespace, root: root.Key()})
}

// Store memoizes the closure of root within namespace.
func (s *SubtypeStore) Store(namespace uint64, root *domain.Type, set domain.Set[*domain.Type]) {
	s.entries.Store(subtypeKey{namespace: namespace, root: root.Key()}, set)
}

// Delete forgets the closure of root within namespace.
func (s *SubtypeStore) Delete(namespace uint64, root *domain.Type) {
	s.entries.Delete(subtypeKey{namespace: namespace, root: root.Key()})
}

// Len returns the number of memoized closures across all namespaces.
func (s *SubtypeStore) Len() int {
	return s.entries.Size()
}
