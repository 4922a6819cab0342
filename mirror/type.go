// Package mirror models Java types symbolically: declared classes,
// parameterized types, generic arrays, type variables and wildcards,
// without loading anything through a JVM. Values are immutable once
// constructed and safe to share across goroutines.
package mirror

// Kind identifies the variant of a Type.
type Kind int

const (
	KindClass Kind = iota
	KindParameterized
	KindGenericArray
	KindTypeVariable
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindParameterized:
		return "parameterized"
	case KindGenericArray:
		return "generic-array"
	case KindTypeVariable:
		return "type-variable"
	case KindWildcard:
		return "wildcard"
	}
	return "unknown"
}

// Type is a symbolic Java type. Exactly five variants implement it:
// *ClassType, *ParameterizedType, *GenericArrayType, *TypeVariable and
// *WildcardType. Equality is structural; Hash is consistent with Equal.
type Type interface {
	Kind() Kind
	String() string
	Equal(other Type) bool
	Hash() uint32
}

// ObjectClass is the qualified name of the universal reference supertype.
const ObjectClass = "java.lang.Object"

// IsPrimitiveName reports whether name is a Java primitive keyword.
func IsPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// hash multipliers; odd so that field positions never cancel out.
const (
	hashSeed  = 17
	hashStep  = 31
	hashStep2 = 37
)

func hashString(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h = h*hashStep + uint32(s[i])
	}
	return h
}

func hashCombine(h uint32, sub uint32) uint32 {
	return h*hashStep2 + sub
}
