package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// FilterSpec narrows query results by the package and name of each element's declaring type.
// The zero value filters nothing.
type FilterSpec struct {
	packages map[string]struct{}
	exclude  *regexp.Regexp
}

// NewFilterSpec builds a FilterSpec.
//
// A nil packages slice means "any package"; a non-nil slice (even an empty one) is an
// allow-list. The exclude pattern must match the whole fully-qualified name of the
// declaring type for an element to be dropped; an empty pattern disables exclusion.
func NewFilterSpec(packages []string, exclude string) (FilterSpec, error) {
	var f FilterSpec
	if packages != nil {
		f.packages = make(map[string]struct{}, len(packages))
		for _, p := range packages {
			f.packages[p] = struct{}{}
		}
	}
	if exclude != "" {
		re, err := regexp.Compile(`^(?:` + exclude + `)$`)
		if err != nil {
			return FilterSpec{}, zerr.With(zerr.Wrap(err, ErrInvalidExcludePattern.Error()), "pattern", exclude)
		}
		f.exclude = re
	}
	return f, nil
}

// MustFilterSpec is like NewFilterSpec but panics on an invalid pattern.
func MustFilterSpec(packages []string, exclude string) FilterSpec {
	f, err := NewFilterSpec(packages, exclude)
	if err != nil {
		panic(err)
	}
	return f
}

// Allows reports whether elements declared by t pass the filter.
// Package scope and exclusion are independent; both must pass.
func (f FilterSpec) Allows(t *Type) bool {
	if f.packages != nil {
		if _, ok := f.packages[t.PackageName()]; !ok {
			return false
		}
	}
	if f.exclude != nil && f.exclude.MatchString(t.Erased().FullyQualifiedName()) {
		return false
	}
	return true
}

// IsZero reports whether the filter keeps everything.
func (f FilterSpec) IsZero() bool {
	return f.packages == nil && f.exclude == nil
}

// Apply removes every element whose declaring type does not pass the filter.
func Apply[E Element](b *SetBuilder[E], f FilterSpec) {
	if f.IsZero() {
		return
	}
	b.Retain(func(e E) bool {
		return f.Allows(e.DeclaringType())
	})
}
