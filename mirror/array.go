package mirror

// GenericArrayType is an array whose component type carries generic
// information: a parameterized type, a type variable, or another generic
// array. Arrays over plain class-like components collapse into ClassType
// via ArrayDepth instead, so the component here is never a *ClassType;
// NewGenericArrayType enforces that, along with the no-wildcard rule.
type GenericArrayType struct {
	Component Type
}

func (t *GenericArrayType) Kind() Kind { return KindGenericArray }

func (t *GenericArrayType) String() string {
	return t.Component.String() + "[]"
}

// Erasure drops generic information from the component and adds one
// array dimension, e.g. List<T>[] erases to List[].
func (t *GenericArrayType) Erasure() *ClassType {
	e := Erasure(t.Component)
	return e.WithArrayDepth(e.ArrayDepth + 1)
}

func (t *GenericArrayType) Equal(other Type) bool {
	o, ok := other.(*GenericArrayType)
	if !ok {
		return false
	}
	return t.Component.Equal(o.Component)
}

func (t *GenericArrayType) Hash() uint32 {
	h := uint32(hashSeed) + uint32(KindGenericArray)
	return hashCombine(h, t.Component.Hash())
}
