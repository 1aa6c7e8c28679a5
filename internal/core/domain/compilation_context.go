package domain

import (
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// PrefixLoader returns the reloadable package prefixes of a build session.
type PrefixLoader func() ([]string, error)

// CompilationContext identifies one incremental build session and owns its reloadable
// classification state. The prefix set is computed on first use; packages confirmed as
// reloadable are remembered for the life of the context and never shared with another one.
type CompilationContext struct {
	id       string
	prefixes func() ([]string, error)
	// confirmed holds package names already seen under a reloadable prefix.
	confirmed *xsync.MapOf[string, struct{}]
}

// NewCompilationContext creates a context whose reloadable prefixes come from load.
// load runs at most once.
func NewCompilationContext(id string, load PrefixLoader) *CompilationContext {
	if load == nil {
		load = func() ([]string, error) { return nil, nil }
	}
	return &CompilationContext{
		id:        id,
		prefixes:  sync.OnceValues((func() ([]string, error))(load)),
		confirmed: xsync.NewMapOf[string, struct{}](),
	}
}

// StaticContext creates a context with a fixed prefix list.
func StaticContext(id string, prefixes ...string) *CompilationContext {
	p := append([]string(nil), prefixes...)
	return NewCompilationContext(id, func() ([]string, error) { return p, nil })
}

// ID returns the session identifier.
func (c *CompilationContext) ID() string { return c.id }

// Prefixes returns the reloadable package prefixes. A failing loader yields none.
func (c *CompilationContext) Prefixes() []string {
	p, err := c.prefixes()
	if err != nil {
		return nil
	}
	return p
}

// Err returns the error reported by the prefix loader, if any.
func (c *CompilationContext) Err() error {
	_, err := c.prefixes()
	return err
}

// IsReloadable reports whether t belongs to a package being recompiled in this session.
func (c *CompilationContext) IsReloadable(t *Type) bool {
	if t.IsNull() {
		return false
	}
	pkg := t.PackageName()
	if _, ok := c.confirmed.Load(pkg); ok {
		return true
	}
	fqn := t.Erased().FullyQualifiedName()
	for _, prefix := range c.Prefixes() {
		if strings.HasPrefix(fqn, prefix) {
			c.confirmed.Store(pkg, struct{}{})
			return true
		}
	}
	return false
}

// ReloadableTypes filters all down to the types classified as reloadable.
func (c *CompilationContext) ReloadableTypes(all []*Type) []*Type {
	out := make([]*Type, 0, len(all)/4)
	for _, t := range all {
		if c.IsReloadable(t) {
			out = append(out, t)
		}
	}
	return out
}

// ConfirmedPackages returns the packages classified as reloadable so far, unordered.
func (c *CompilationContext) ConfirmedPackages() []string {
	out := make([]string, 0, c.confirmed.Size())
	c.confirmed.Range(func(pkg string, _ struct{}) bool {
		out = append(out, pkg)
		return true
	})
	return out
}
