package domain

import (
	"iter"
	"slices"
	"strings"
)

// Set is an immutable identity set of program elements keyed by ElementKey.
// Iteration order is unspecified; use Sorted for stable output.
type Set[E Element] struct {
	items map[ElementKey]E
}

// NewSet builds a Set from the given elements. Later duplicates are dropped.
func NewSet[E Element](elems ...E) Set[E] {
	b := NewSetBuilder[E](len(elems))
	for _, e := range elems {
		b.Add(e)
	}
	return b.Set()
}

// Len returns the number of elements.
func (s Set[E]) Len() int { return len(s.items) }

// Contains reports whether an element with the given key is present.
func (s Set[E]) Contains(k ElementKey) bool {
	_, ok := s.items[k]
	return ok
}

// Get returns the element stored under k.
func (s Set[E]) Get(k ElementKey) (E, bool) {
	e, ok := s.items[k]
	return e, ok
}

// All returns an iterator over the elements.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.items {
			if !yield(e) {
				return
			}
		}
	}
}

// Sorted returns the elements ordered by fully-qualified name.
func (s Set[E]) Sorted() []E {
	out := make([]E, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b E) int {
		return strings.Compare(a.FullyQualifiedName(), b.FullyQualifiedName())
	})
	return out
}

// Names returns the sorted fully-qualified names.
func (s Set[E]) Names() []string {
	sorted := s.Sorted()
	names := make([]string, len(sorted))
	for i, e := range sorted {
		names[i] = e.FullyQualifiedName()
	}
	return names
}

// SetBuilder accumulates elements for a Set. It is not safe for concurrent use.
type SetBuilder[E Element] struct {
	items map[ElementKey]E
}

// NewSetBuilder returns a builder sized for hint elements.
func NewSetBuilder[E Element](hint int) *SetBuilder[E] {
	return &SetBuilder[E]{items: make(map[ElementKey]E, hint)}
}

// Add inserts e unless an element with the same key is already present.
// It reports whether e was inserted.
func (b *SetBuilder[E]) Add(e E) bool {
	k := e.Key()
	if _, ok := b.items[k]; ok {
		return false
	}
	b.items[k] = e
	return true
}

// Retain drops every element for which keep returns false.
func (b *SetBuilder[E]) Retain(keep func(E) bool) {
	for k, e := range b.items {
		if !keep(e) {
			delete(b.items, k)
		}
	}
}

// Set freezes the builder. The builder must not be used afterwards.
func (b *SetBuilder[E]) Set() Set[E] {
	s := Set[E]{items: b.items}
	b.items = nil
	return s
}
