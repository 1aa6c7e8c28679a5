package manifest

import (
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/zerr"
)

// File represents the structure of a universe manifest.
type File struct {
	// Types is the known metadata universe.
	Types []TypeDTO `yaml:"types"`
	// Classpath lists types only the stable sweep can see.
	Classpath []TypeDTO `yaml:"classpath"`
	// Reloadable lists package prefixes recompiled by the build that wrote the manifest.
	Reloadable []string `yaml:"reloadable"`
}

// TypeDTO represents a type declaration.
type TypeDTO struct {
	Name        string      `yaml:"name"`
	Package     string      `yaml:"package"`
	Supertypes  []string    `yaml:"supertypes"`
	Annotations []string    `yaml:"annotations"`
	Anonymous   bool        `yaml:"anonymous"`
	Synthetic   bool        `yaml:"synthetic"`
	Methods     []MethodDTO `yaml:"methods"`
	Fields      []MemberDTO `yaml:"fields"`
}

// MethodDTO represents a method declaration.
type MethodDTO struct {
	Name        string      `yaml:"name"`
	Annotations []string    `yaml:"annotations"`
	Parameters  []MemberDTO `yaml:"parameters"`
}

// MemberDTO represents a field or parameter declaration.
type MemberDTO struct {
	Name        string   `yaml:"name"`
	Annotations []string `yaml:"annotations"`
}

func (t TypeDTO) toSpec() domain.TypeSpec {
	spec := domain.TypeSpec{
		Name:        t.Name,
		Package:     t.Package,
		Supertypes:  t.Supertypes,
		Annotations: t.Annotations,
		Anonymous:   t.Anonymous,
		Synthetic:   t.Synthetic,
	}
	for _, m := range t.Methods {
		ms := domain.MethodSpec{Name: m.Name, Annotations: m.Annotations}
		for _, p := range m.Parameters {
			ms.Parameters = append(ms.Parameters, domain.ParameterSpec{Name: p.Name, Annotations: p.Annotations})
		}
		spec.Methods = append(spec.Methods, ms)
	}
	for _, f := range t.Fields {
		spec.Fields = append(spec.Fields, domain.FieldSpec{Name: f.Name, Annotations: f.Annotations})
	}
	return spec
}

// checkMembers rejects members whose element keys would collide. Methods are identified
// by name alone, so overloads must be declared as one method.
func (t TypeDTO) checkMembers() error {
	seen := make(map[string]bool, len(t.Methods)+len(t.Fields))
	claim := func(fqn string) error {
		if seen[fqn] {
			return zerr.With(zerr.Wrap(domain.ErrDuplicateMember, "failed to add type"), "member", fqn)
		}
		seen[fqn] = true
		return nil
	}
	for _, m := range t.Methods {
		if err := claim("method " + t.Name + "#" + m.Name); err != nil {
			return err
		}
		for _, p := range m.Parameters {
			if err := claim("parameter " + t.Name + "#" + m.Name + "(" + p.Name + ")"); err != nil {
				return err
			}
		}
	}
	for _, f := range t.Fields {
		if err := claim("field " + t.Name + "#" + f.Name); err != nil {
			return err
		}
	}
	return nil
}
