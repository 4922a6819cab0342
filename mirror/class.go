package mirror

import "strings"

// ClassKind classifies a declared symbol.
type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// ClassType is the nominal variant: a declared class, interface, enum or
// annotation type, a primitive, the pseudo-type void, or an array of any
// of those. Two ClassTypes are equal when their erasures match, i.e. same
// qualified name and same array depth; generic arguments never enter into
// it (those live on ParameterizedType).
type ClassType struct {
	// Name is the qualified source name ("java.util.List") or a
	// primitive keyword ("int", "void").
	Name string
	// ArrayDepth counts trailing "[]" pairs; 0 for non-arrays.
	ArrayDepth int
	// Symbol links back to the declared symbol this reference resolved
	// through. Nil for primitives, void, and bare name references.
	Symbol *Symbol
}

// Primitive and void singletons. Arrays of primitives are built with
// PrimitiveArray rather than by mutating these.
var (
	PrimitiveBoolean = &ClassType{Name: "boolean"}
	PrimitiveByte    = &ClassType{Name: "byte"}
	PrimitiveChar    = &ClassType{Name: "char"}
	PrimitiveShort   = &ClassType{Name: "short"}
	PrimitiveInt     = &ClassType{Name: "int"}
	PrimitiveLong    = &ClassType{Name: "long"}
	PrimitiveFloat   = &ClassType{Name: "float"}
	PrimitiveDouble  = &ClassType{Name: "double"}
	Void             = &ClassType{Name: "void"}
)

// PrimitiveByName returns the primitive singleton for a keyword, or nil.
func PrimitiveByName(name string) *ClassType {
	switch name {
	case "boolean":
		return PrimitiveBoolean
	case "byte":
		return PrimitiveByte
	case "char":
		return PrimitiveChar
	case "short":
		return PrimitiveShort
	case "int":
		return PrimitiveInt
	case "long":
		return PrimitiveLong
	case "float":
		return PrimitiveFloat
	case "double":
		return PrimitiveDouble
	}
	return nil
}

// PrimitiveArray builds an array type over a primitive keyword. It
// panics when name is not one of the eight primitive keywords; arrays
// over declared types come from WithArrayDepth on a resolved reference.
func PrimitiveArray(name string, depth int) *ClassType {
	if !IsPrimitiveName(name) {
		panic("mirror: PrimitiveArray of non-primitive " + name)
	}
	return &ClassType{Name: name, ArrayDepth: depth}
}

func (t *ClassType) Kind() Kind { return KindClass }

func (t *ClassType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

// SimpleName is the last dotted component of the qualified name.
func (t *ClassType) SimpleName() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

func (t *ClassType) IsPrimitive() bool {
	return t.ArrayDepth == 0 && IsPrimitiveName(t.Name)
}

func (t *ClassType) IsVoid() bool {
	return t.ArrayDepth == 0 && t.Name == "void"
}

func (t *ClassType) IsArray() bool { return t.ArrayDepth > 0 }

// IsPrimitiveArray reports whether this is an array with a primitive
// element type, e.g. int[][].
func (t *ClassType) IsPrimitiveArray() bool {
	return t.ArrayDepth > 0 && IsPrimitiveName(t.Name)
}

// IsObject reports whether this is exactly java.lang.Object.
func (t *ClassType) IsObject() bool {
	return t.ArrayDepth == 0 && t.Name == ObjectClass
}

// ElementType strips one array dimension; on a non-array it returns the
// receiver unchanged.
func (t *ClassType) ElementType() *ClassType {
	if t.ArrayDepth == 0 {
		return t
	}
	return &ClassType{Name: t.Name, ArrayDepth: t.ArrayDepth - 1, Symbol: t.Symbol}
}

// WithArrayDepth returns a reference to the same declaration with the
// given array depth.
func (t *ClassType) WithArrayDepth(depth int) *ClassType {
	if depth == t.ArrayDepth {
		return t
	}
	return &ClassType{Name: t.Name, ArrayDepth: depth, Symbol: t.Symbol}
}

func (t *ClassType) Equal(other Type) bool {
	o, ok := other.(*ClassType)
	if !ok {
		return false
	}
	return t.Name == o.Name && t.ArrayDepth == o.ArrayDepth
}

func (t *ClassType) Hash() uint32 {
	h := uint32(hashSeed) + uint32(KindClass)
	h = hashString(h, t.Name)
	return hashCombine(h, uint32(t.ArrayDepth))
}
