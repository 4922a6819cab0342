package mirror

import "strings"

// TypeVariable is a named placeholder declared by a class, method or
// constructor. Identity is (declaration, name): two variables named T
// from different declarations are distinct types.
//
// Bounds are not stored on the variable; Bounds() looks them up through
// the declaration each time. That indirection is what lets
// "E extends Enum<E>" exist without an infinite value.
type TypeVariable struct {
	Name string
	Decl Declaration
}

func (t *TypeVariable) Kind() Kind { return KindTypeVariable }

func (t *TypeVariable) String() string { return t.Name }

// StringWithBounds renders the variable together with its declared
// bounds, "T extends java.lang.Number & java.lang.Comparable<T>". An
// unbounded variable renders as its bare name.
func (t *TypeVariable) StringWithBounds() string {
	bounds := t.Bounds()
	if len(bounds) == 1 {
		if c, ok := bounds[0].(*ClassType); ok && c.IsObject() {
			return t.Name
		}
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString(" extends ")
	for i, b := range bounds {
		if i > 0 {
			sb.WriteString(" & ")
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Bounds resolves the variable's declared bounds through its
// declaration. A variable with no declared bounds, or one whose
// declaration no longer knows it, has the implicit java.lang.Object
// bound.
func (t *TypeVariable) Bounds() []Type {
	if t.Decl != nil {
		for _, p := range t.Decl.TypeParameters() {
			if p.Name == t.Name {
				if len(p.Bounds) > 0 {
					return p.Bounds
				}
				break
			}
		}
	}
	return []Type{&ClassType{Name: ObjectClass}}
}

// FirstBound is the leading bound, which drives erasure and
// assignability.
func (t *TypeVariable) FirstBound() Type { return t.Bounds()[0] }

func (t *TypeVariable) Equal(other Type) bool {
	o, ok := other.(*TypeVariable)
	if !ok {
		return false
	}
	if t.Name != o.Name {
		return false
	}
	switch {
	case t.Decl == nil && o.Decl == nil:
		return true
	case t.Decl == nil || o.Decl == nil:
		return false
	}
	return t.Decl.DeclarationName() == o.Decl.DeclarationName()
}

func (t *TypeVariable) Hash() uint32 {
	h := uint32(hashSeed) + uint32(KindTypeVariable)
	if t.Decl != nil {
		h = hashString(h, t.Decl.DeclarationName())
	}
	return hashString(hashCombine(h, 0), t.Name)
}
