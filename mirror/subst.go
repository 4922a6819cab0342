package mirror

// Erasure reduces any type to its raw class-like form: parameterized
// types lose their arguments, type variables erase to their first
// bound, wildcards to their effective upper bound, generic arrays to an
// array of the erased component.
func Erasure(t Type) *ClassType {
	switch t := t.(type) {
	case *ClassType:
		return t
	case *ParameterizedType:
		return t.Raw
	case *GenericArrayType:
		return t.Erasure()
	case *TypeVariable:
		return Erasure(t.FirstBound())
	case *WildcardType:
		return Erasure(t.EffectiveUpper())
	}
	return &ClassType{Name: ObjectClass}
}

// Substitute replaces type variables by name according to subst,
// rebuilding containers only along changed paths.
func Substitute(t Type, subst map[string]Type) Type {
	if t == nil || len(subst) == 0 {
		return t
	}
	switch t := t.(type) {
	case *TypeVariable:
		if r, ok := subst[t.Name]; ok {
			return r
		}
		return t
	case *ParameterizedType:
		owner := Substitute(t.Owner, subst)
		args := make([]Type, len(t.Args))
		changed := owner != t.Owner
		for i, a := range t.Args {
			args[i] = Substitute(a, subst)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &ParameterizedType{Raw: t.Raw, Owner: owner, Args: args}
	case *GenericArrayType:
		c := Substitute(t.Component, subst)
		if c == t.Component {
			return t
		}
		// Substitution can collapse T[] to a plain array when T maps to
		// a class-like type.
		if cc, ok := c.(*ClassType); ok {
			return cc.WithArrayDepth(cc.ArrayDepth + 1)
		}
		return &GenericArrayType{Component: c}
	case *WildcardType:
		upper := Substitute(t.Upper, subst)
		lower := Substitute(t.Lower, subst)
		if upper == t.Upper && lower == t.Lower {
			return t
		}
		return &WildcardType{Upper: upper, Lower: lower}
	}
	return t
}

// paramSubst maps a declaration's parameter names to the given
// arguments, positionally.
func paramSubst(params []TypeParam, args []Type) map[string]Type {
	subst := make(map[string]Type, len(params))
	for i, p := range params {
		if i < len(args) {
			subst[p.Name] = args[i]
		}
	}
	return subst
}

// asSuper rewrites a parameterized type as an instantiation of the
// ancestor declaration named rawName, substituting type arguments along
// the ancestry. Returns nil when rawName is not an ancestor, and the
// erased ancestor reference as a plain ClassType when the ancestry
// passes through a raw (unparameterized) supertype.
func asSuper(t *ParameterizedType, rawName string) Type {
	if t.Raw.Name == rawName {
		return t
	}
	sym := t.Raw.Symbol
	if sym == nil {
		return nil
	}
	subst := paramSubst(sym.Params, t.Args)
	for _, super := range sym.Supertypes() {
		if found := asSuperFrom(Substitute(super, subst), rawName); found != nil {
			return found
		}
	}
	return nil
}

func asSuperFrom(super Type, rawName string) Type {
	switch super := super.(type) {
	case *ParameterizedType:
		return asSuper(super, rawName)
	case *ClassType:
		if super.Name == rawName {
			return super
		}
		if super.Symbol == nil {
			return nil
		}
		if !super.Symbol.IsGeneric() {
			// Non-generic ancestors pass generic information through
			// untouched.
			for _, next := range super.Symbol.Supertypes() {
				if found := asSuperFrom(next, rawName); found != nil {
					return found
				}
			}
			return nil
		}
		// A raw use of a generic declaration erases everything above.
		for _, next := range super.Symbol.Supertypes() {
			if found := asSuperFrom(Erasure(next), rawName); found != nil {
				return Erasure(found)
			}
		}
	}
	return nil
}
