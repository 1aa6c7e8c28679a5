// Package domain contains the program element model, query values and reloadable
// classification used by the annotation index.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ElementKind identifies one of the four program element variants.
type ElementKind uint8

const (
	// KindType is a class or interface.
	KindType ElementKind = iota
	// KindMethod is a method declared on a type.
	KindMethod
	// KindField is a field declared on a type.
	KindField
	// KindParameter is a parameter of a declared method.
	KindParameter
)

// String returns the lower-case name of the kind.
func (k ElementKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// ParseElementKind converts a kind name (as printed by String) to an ElementKind.
func ParseElementKind(s string) (ElementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "type", "types":
		return KindType, nil
	case "method", "methods":
		return KindMethod, nil
	case "field", "fields":
		return KindField, nil
	case "parameter", "parameters", "param":
		return KindParameter, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownElementKind, "failed to parse element kind"), "kind", s)
	}
}

// Annotation names an annotation type. Only presence is tracked, never values.
type Annotation struct {
	name InternedString
}

// NewAnnotation creates an Annotation from its (simple or qualified) name.
func NewAnnotation(name string) Annotation {
	return Annotation{name: NewInternedString(name)}
}

// String returns the annotation name.
func (a Annotation) String() string {
	return a.name.String()
}

// ElementKey is the identity of a program element: kind plus fully-qualified name.
type ElementKey struct {
	Kind ElementKind
	Name InternedString
}

// String renders the key as kind:name.
func (k ElementKey) String() string {
	return k.Kind.String() + ":" + k.Name.String()
}

// Element is the capability shared by all program element variants.
type Element interface {
	Key() ElementKey
	FullyQualifiedName() string
	// DeclaringType returns the owning type; a Type returns itself.
	DeclaringType() *Type
	HasAnnotation(a Annotation) bool
}

type annotationSet map[Annotation]struct{}

func newAnnotationSet(names []string) annotationSet {
	if len(names) == 0 {
		return nil
	}
	set := make(annotationSet, len(names))
	for _, n := range names {
		set[NewAnnotation(n)] = struct{}{}
	}
	return set
}

func (s annotationSet) has(a Annotation) bool {
	_, ok := s[a]
	return ok
}

func (s annotationSet) names() []string {
	out := make([]string, 0, len(s))
	for a := range s {
		out = append(out, a.String())
	}
	return out
}

// TypeSpec describes a type handed to NewType by a metadata source.
type TypeSpec struct {
	Name        string
	Package     string
	Supertypes  []string
	Annotations []string
	Anonymous   bool
	Synthetic   bool
	Methods     []MethodSpec
	Fields      []FieldSpec
}

// MethodSpec describes a declared method.
type MethodSpec struct {
	Name        string
	Annotations []string
	Parameters  []ParameterSpec
}

// FieldSpec describes a declared field.
type FieldSpec struct {
	Name        string
	Annotations []string
}

// ParameterSpec describes a method parameter.
type ParameterSpec struct {
	Name        string
	Annotations []string
}

// Type is a class or interface in the program universe.
// Types are immutable once built and compared by identity key.
type Type struct {
	name        InternedString
	pkg         InternedString
	supertypes  []InternedString
	annotations annotationSet
	anonymous   bool
	synthetic   bool
	methods     []*Method
	fields      []*Field

	// raw is set on parameterized views and points at the erased type.
	raw      *Type
	typeArgs []InternedString
}

// NewType builds a Type and its members from a spec.
// When Package is empty it is derived from the name.
func NewType(spec TypeSpec) *Type {
	pkg := spec.Package
	if pkg == "" {
		pkg = PackageOf(spec.Name)
	}

	t := &Type{
		name:        NewInternedString(spec.Name),
		pkg:         NewInternedString(pkg),
		supertypes:  internAll(spec.Supertypes),
		annotations: newAnnotationSet(spec.Annotations),
		anonymous:   spec.Anonymous,
		synthetic:   spec.Synthetic,
	}

	for _, ms := range spec.Methods {
		m := &Method{
			owner:       t,
			name:        ms.Name,
			fqn:         NewInternedString(spec.Name + "#" + ms.Name),
			annotations: newAnnotationSet(ms.Annotations),
		}
		for i, ps := range ms.Parameters {
			m.params = append(m.params, &Parameter{
				method:      m,
				name:        ps.Name,
				index:       i,
				fqn:         NewInternedString(spec.Name + "#" + ms.Name + "(" + ps.Name + ")"),
				annotations: newAnnotationSet(ps.Annotations),
			})
		}
		t.methods = append(t.methods, m)
	}

	for _, fs := range spec.Fields {
		t.fields = append(t.fields, &Field{
			owner:       t,
			name:        fs.Name,
			fqn:         NewInternedString(spec.Name + "#" + fs.Name),
			annotations: newAnnotationSet(fs.Annotations),
		})
	}

	return t
}

// PackageOf returns everything before the last dot of a fully-qualified name.
func PackageOf(fqn string) string {
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		return fqn[:i]
	}
	return ""
}

// NullType is the placeholder for "no type". It is never a subtype root or a result member.
var NullType = &Type{
	name: NewInternedString("<null>"),
	pkg:  NewInternedString(""),
}

// IsNull reports whether t is nil or the NullType placeholder.
func (t *Type) IsNull() bool {
	return t == nil || t == NullType || t.name == NullType.name
}

// Key implements Element.
func (t *Type) Key() ElementKey {
	return ElementKey{Kind: KindType, Name: t.Erased().name}
}

// FullyQualifiedName implements Element. Parameterized views include their arguments.
func (t *Type) FullyQualifiedName() string {
	if len(t.typeArgs) == 0 {
		return t.name.String()
	}
	args := make([]string, len(t.typeArgs))
	for i, a := range t.typeArgs {
		args[i] = a.String()
	}
	return t.name.String() + "<" + strings.Join(args, ",") + ">"
}

// Name returns the interned raw name.
func (t *Type) Name() InternedString { return t.name }

// PackageName returns the package the type belongs to.
func (t *Type) PackageName() string { return t.pkg.String() }

// DeclaringType implements Element.
func (t *Type) DeclaringType() *Type { return t }

// HasAnnotation implements Element.
func (t *Type) HasAnnotation(a Annotation) bool { return t.Erased().annotations.has(a) }

// Annotations lists the annotation names present on the type, unordered.
func (t *Type) Annotations() []string { return t.Erased().annotations.names() }

// Supertypes returns the declared direct supertypes.
func (t *Type) Supertypes() []InternedString { return t.Erased().supertypes }

// IsAnonymous reports whether the type is an anonymous class.
func (t *Type) IsAnonymous() bool { return t.anonymous }

// IsSynthetic reports whether the type was generated by the compiler.
func (t *Type) IsSynthetic() bool { return t.synthetic }

// Methods returns the declared methods.
func (t *Type) Methods() []*Method { return t.Erased().methods }

// Fields returns the declared fields.
func (t *Type) Fields() []*Field { return t.Erased().fields }

// Parameterize returns a view of t with the given type arguments.
func (t *Type) Parameterize(args ...string) *Type {
	raw := t.Erased()
	if len(args) == 0 {
		return raw
	}
	view := *raw
	view.raw = raw
	view.typeArgs = internAll(args)
	return &view
}

// Erased returns the type with its generic arguments stripped.
func (t *Type) Erased() *Type {
	if t.raw != nil {
		return t.raw
	}
	return t
}

// Method is a method declared on a Type.
type Method struct {
	owner       *Type
	name        string
	fqn         InternedString
	annotations annotationSet
	params      []*Parameter
}

// Key implements Element.
func (m *Method) Key() ElementKey { return ElementKey{Kind: KindMethod, Name: m.fqn} }

// FullyQualifiedName implements Element.
func (m *Method) FullyQualifiedName() string { return m.fqn.String() }

// Name returns the simple method name.
func (m *Method) Name() string { return m.name }

// DeclaringType implements Element.
func (m *Method) DeclaringType() *Type { return m.owner }

// HasAnnotation implements Element.
func (m *Method) HasAnnotation(a Annotation) bool { return m.annotations.has(a) }

// Parameters returns the method parameters in declaration order.
func (m *Method) Parameters() []*Parameter { return m.params }

// Field is a field declared on a Type.
type Field struct {
	owner       *Type
	name        string
	fqn         InternedString
	annotations annotationSet
}

// Key implements Element.
func (f *Field) Key() ElementKey { return ElementKey{Kind: KindField, Name: f.fqn} }

// FullyQualifiedName implements Element.
func (f *Field) FullyQualifiedName() string { return f.fqn.String() }

// Name returns the simple field name.
func (f *Field) Name() string { return f.name }

// DeclaringType implements Element.
func (f *Field) DeclaringType() *Type { return f.owner }

// HasAnnotation implements Element.
func (f *Field) HasAnnotation(a Annotation) bool { return f.annotations.has(a) }

// Parameter is a parameter of a Method.
type Parameter struct {
	method      *Method
	name        string
	index       int
	fqn         InternedString
	annotations annotationSet
}

// Key implements Element.
func (p *Parameter) Key() ElementKey { return ElementKey{Kind: KindParameter, Name: p.fqn} }

// FullyQualifiedName implements Element.
func (p *Parameter) FullyQualifiedName() string { return p.fqn.String() }

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Index returns the zero-based position of the parameter.
func (p *Parameter) Index() int { return p.index }

// DeclaringMember returns the method the parameter belongs to.
func (p *Parameter) DeclaringMember() *Method { return p.method }

// DeclaringType implements Element.
func (p *Parameter) DeclaringType() *Type { return p.method.owner }

// HasAnnotation implements Element.
func (p *Parameter) HasAnnotation(a Annotation) bool { return p.annotations.has(a) }
