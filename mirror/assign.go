package mirror

// Class-like supertypes every array has besides java.lang.Object.
const (
	cloneableClass    = "java.lang.Cloneable"
	serializableClass = "java.io.Serializable"
)

// IsAssignable reports whether a value of type source may be used where
// target is expected. It models reference assignability only: primitive
// types match exactly, with no widening or narrowing conversions, and
// no unchecked (raw-to-parameterized) assignments are admitted.
//
// The analysis is a recursive structural comparison keyed on the
// target's variant and then the source's, so arbitrarily nested forms
// like List<? extends Map<?,? extends Number>> resolve correctly.
func IsAssignable(target, source Type) bool {
	if target == nil || source == nil {
		return false
	}
	if target.Equal(source) {
		return true
	}

	// A source wildcard contributes only its extends side; a source
	// variable contributes its first bound. The universal top type
	// accepts either outright.
	switch s := source.(type) {
	case *WildcardType:
		if isObjectType(target) {
			return true
		}
		if s.Lower != nil {
			return false
		}
		return IsAssignable(target, s.EffectiveUpper())
	case *TypeVariable:
		if isObjectType(target) {
			return true
		}
		return IsAssignable(target, s.FirstBound())
	}

	switch t := target.(type) {
	case *ClassType:
		return assignableToClass(t, source)
	case *ParameterizedType:
		return assignableToParameterized(t, source)
	case *GenericArrayType:
		return assignableToGenericArray(t, source)
	case *TypeVariable, *WildcardType:
		// Nothing but the identical variable (handled above) is a
		// provable subtype of an uncaptured variable or wildcard.
		return false
	}
	return false
}

// IsSubtypeOf reports whether sub is a subtype of super.
func IsSubtypeOf(sub, super Type) bool { return IsAssignable(super, sub) }

// IsSupertypeOf reports whether super is a supertype of sub.
func IsSupertypeOf(super, sub Type) bool { return IsAssignable(super, sub) }

func isObjectType(t Type) bool {
	c, ok := t.(*ClassType)
	return ok && c.IsObject()
}

func assignableToClass(t *ClassType, source Type) bool {
	switch {
	case t.IsVoid(), t.IsPrimitive():
		// Exact identity only, and that already failed above.
		return false
	case t.IsObject():
		// Everything is an Object except primitives and void;
		// primitive arrays are reference types and qualify.
		if s, ok := source.(*ClassType); ok {
			return !s.IsPrimitive() && !s.IsVoid()
		}
		return true
	case t.IsArray():
		return assignableToClassArray(t, source)
	}

	// Plain nominal target.
	switch s := source.(type) {
	case *ClassType:
		if s.IsPrimitive() || s.IsVoid() {
			return false
		}
		if s.IsArray() {
			return t.Name == cloneableClass || t.Name == serializableClass
		}
		return isNominalSubtype(s, t.Name)
	case *ParameterizedType:
		return isNominalSubtype(s.Raw, t.Name)
	case *GenericArrayType:
		return t.Name == cloneableClass || t.Name == serializableClass
	}
	return false
}

// assignableToClassArray implements array covariance: components are
// compared recursively, with primitive components handled by the exact-
// identity rule one level down. Note that int[][] is still assignable
// to Object[] — its component int[] is a reference type.
func assignableToClassArray(t *ClassType, source Type) bool {
	switch s := source.(type) {
	case *ClassType:
		if !s.IsArray() {
			return false
		}
		return IsAssignable(t.ElementType(), s.ElementType())
	case *GenericArrayType:
		return IsAssignable(t.ElementType(), s.Component)
	}
	return false
}

// isNominalSubtype walks the declared ancestry of sub, over erasures
// only, looking for superName.
func isNominalSubtype(sub *ClassType, superName string) bool {
	if sub.ArrayDepth > 0 {
		return false
	}
	if sub.Name == superName {
		return true
	}
	if sub.Symbol == nil {
		return false
	}
	for _, super := range sub.Symbol.Supertypes() {
		if isNominalSubtype(Erasure(super), superName) {
			return true
		}
	}
	return false
}

func assignableToParameterized(t *ParameterizedType, source Type) bool {
	switch s := source.(type) {
	case *ClassType:
		if s.IsArray() || s.IsPrimitive() || s.IsVoid() {
			return false
		}
		// A non-generic class keeps full generic information in its
		// supertypes ("String implements Comparable<String>"), so the
		// search continues through them.
		if s.Symbol != nil && !s.Symbol.IsGeneric() {
			for _, super := range s.Symbol.Supertypes() {
				if IsAssignable(t, super) {
					return true
				}
			}
			return false
		}
		// A raw use of a generic declaration loses its argument
		// information and is accepted only when the target constrains
		// nothing.
		return allUnboundedWildcards(t.Args) && isNominalSubtype(s, t.Raw.Name)
	case *ParameterizedType:
		up := asSuper(s, t.Raw.Name)
		switch up := up.(type) {
		case *ParameterizedType:
			if !ownerCompatible(t.Owner, up.Owner) {
				return false
			}
			if len(up.Args) != len(t.Args) {
				return false
			}
			for i := range t.Args {
				if !argumentContains(t.Args[i], up.Args[i]) {
					return false
				}
			}
			return true
		case *ClassType:
			// Ancestry passed through a raw supertype.
			return allUnboundedWildcards(t.Args)
		}
		return false
	}
	return false
}

func allUnboundedWildcards(args []Type) bool {
	for _, a := range args {
		w, ok := a.(*WildcardType)
		if !ok || !w.IsUnbounded() {
			return false
		}
	}
	return true
}

func ownerCompatible(want, got Type) bool {
	if want == nil {
		return true
	}
	if got == nil {
		return false
	}
	return IsAssignable(want, got)
}

// argumentContains implements type-argument containment: generics are
// invariant, so a non-wildcard target argument admits only an equal
// source argument, while wildcard targets capture covariantly through
// their extends bound and contravariantly through their super bound.
func argumentContains(target, source Type) bool {
	if target.Equal(source) {
		return true
	}
	w, ok := target.(*WildcardType)
	if !ok {
		return false
	}
	switch {
	case w.IsUnbounded():
		return true
	case w.Upper != nil:
		return IsAssignable(w.Upper, source)
	default:
		if sw, ok := source.(*WildcardType); ok {
			if sw.Lower == nil {
				return false
			}
			// ? super S contains ? super T when T is a subtype of S.
			return IsAssignable(sw.Lower, w.Lower)
		}
		return IsAssignable(source, w.Lower)
	}
}

func assignableToGenericArray(t *GenericArrayType, source Type) bool {
	switch s := source.(type) {
	case *GenericArrayType:
		return IsAssignable(t.Component, s.Component)
	case *ClassType:
		if !s.IsArray() {
			return false
		}
		return IsAssignable(t.Component, s.ElementType())
	}
	return false
}
