package mirror

// NewParameterizedType builds a validated parameterized type over raw.
// owner is the enclosing parameterized type for non-static member types
// of generic enclosing types, nil otherwise.
//
// Validation follows the language rules: the raw type must actually be
// parameterizable, the argument count must match the declared parameter
// count, no argument may be a primitive or void, the owner must be
// present exactly when required and must denote the enclosing type, and
// every argument must satisfy its parameter's bounds after owner and
// sibling parameters are substituted into them.
func NewParameterizedType(raw *ClassType, owner Type, args ...Type) (*ParameterizedType, error) {
	if raw == nil {
		return nil, invalidf("<nil>", "raw type is nil")
	}
	if raw.IsPrimitive() || raw.IsVoid() || raw.IsArray() {
		return nil, invalidf(raw.String(), "raw type must be a declared class or interface")
	}
	sym := raw.Symbol
	if sym == nil {
		return nil, invalidf(raw.String(), "raw type has no declared symbol")
	}

	ownerPT, _ := owner.(*ParameterizedType)
	if len(sym.Params) == 0 && ownerPT == nil {
		return nil, invalidf(raw.String(), "type declares no type parameters and has no parameterized owner")
	}
	if len(args) != len(sym.Params) {
		return nil, invalidf(raw.String(), "got %d type arguments, want %d", len(args), len(sym.Params))
	}

	subst, err := checkOwner(sym, owner)
	if err != nil {
		return nil, err
	}

	for i, arg := range args {
		if arg == nil {
			return nil, invalidf(raw.String(), "type argument %d is nil", i)
		}
		if c, ok := arg.(*ClassType); ok && (c.IsPrimitive() || c.IsVoid()) {
			return nil, invalidf(c.String(), "primitive types cannot be type arguments")
		}
	}
	// Sibling parameters may appear in each other's bounds, so the full
	// substitution is in place before any bound is checked.
	for i, p := range sym.Params {
		subst[p.Name] = args[i]
	}
	for i, p := range sym.Params {
		for _, bound := range p.Bounds {
			resolved := Substitute(bound, subst)
			if !argSatisfiesBound(resolved, args[i]) {
				return nil, invalidf(args[i].String(),
					"does not satisfy bound %s of parameter %s of %s", resolved, p.Name, sym.Name)
			}
		}
	}

	return &ParameterizedType{Raw: raw, Owner: owner, Args: args}, nil
}

func checkOwner(sym *Symbol, owner Type) (map[string]Type, error) {
	subst := map[string]Type{}
	if sym.IsTopLevel() || sym.Static {
		if owner != nil {
			return nil, invalidf(sym.Name, "static or top-level type cannot have an owner type")
		}
		return subst, nil
	}
	ownerErasure := ""
	switch o := owner.(type) {
	case nil:
	case *ParameterizedType:
		ownerErasure = o.Raw.Name
		if o.Raw.Symbol != nil {
			for k, v := range paramSubst(o.Raw.Symbol.Params, o.Args) {
				subst[k] = v
			}
		}
	case *ClassType:
		ownerErasure = o.Name
	default:
		return nil, invalidf(owner.String(), "owner must be a class or parameterized type")
	}
	if owner == nil {
		// Only an owner carrying live generic information is mandatory.
		if sym.Outer.IsGeneric() {
			return nil, invalidf(sym.Name, "member type of generic type %s requires an owner type", sym.Outer.Name)
		}
		return subst, nil
	}
	if ownerErasure != sym.Outer.Name {
		return nil, invalidf(sym.Name, "owner type %s does not enclose it (want %s)", ownerErasure, sym.Outer.Name)
	}
	return subst, nil
}

// argSatisfiesBound reports whether a supplied type argument satisfies
// one resolved declared bound. Wildcards are judged by the side they
// constrain: an extends-wildcard through its upper bound, a
// super-wildcard through its lower (the capture's upper bound is the
// declared one), and the plain "?" satisfies everything.
func argSatisfiesBound(bound, arg Type) bool {
	if w, ok := arg.(*WildcardType); ok {
		switch {
		case w.IsUnbounded():
			return true
		case w.Lower != nil:
			return IsAssignable(bound, w.Lower)
		default:
			return IsAssignable(bound, w.Upper)
		}
	}
	return IsAssignable(bound, arg)
}

// NewGenericArrayType builds an array over a generic component. Plain
// class-like components are rejected (use ClassType.ArrayDepth), as are
// wildcard components: a wildcard is never a legal array component, it
// may only appear as a type argument.
func NewGenericArrayType(component Type) (*GenericArrayType, error) {
	switch component.(type) {
	case nil:
		return nil, invalidf("<nil>", "array component is nil")
	case *ClassType:
		return nil, invalidf(component.String(), "array over a class-like component is a plain array, not a generic one")
	case *WildcardType:
		return nil, invalidf(component.String(), "wildcards cannot be array components")
	}
	return &GenericArrayType{Component: component}, nil
}

// NewExtendsWildcard builds "? extends bound".
func NewExtendsWildcard(bound Type) (*WildcardType, error) {
	if err := checkWildcardBound(bound); err != nil {
		return nil, err
	}
	return &WildcardType{Upper: bound}, nil
}

// NewSuperWildcard builds "? super bound".
func NewSuperWildcard(bound Type) (*WildcardType, error) {
	if err := checkWildcardBound(bound); err != nil {
		return nil, err
	}
	return &WildcardType{Lower: bound}, nil
}

func checkWildcardBound(bound Type) error {
	switch b := bound.(type) {
	case nil:
		return invalidf("?", "wildcard bound is nil")
	case *WildcardType:
		return invalidf(b.String(), "wildcards cannot bound other wildcards")
	case *ClassType:
		if b.IsPrimitive() || b.IsVoid() {
			return invalidf(b.String(), "wildcard bounds must be reference types")
		}
	}
	return nil
}

// NewTypeVariable builds a reference to a type variable declared by
// decl. The declaration must actually declare a parameter of that name.
func NewTypeVariable(decl Declaration, name string) (*TypeVariable, error) {
	if decl == nil {
		return nil, invalidf(name, "type variable has no declaring construct")
	}
	for _, p := range decl.TypeParameters() {
		if p.Name == name {
			return &TypeVariable{Name: name, Decl: decl}, nil
		}
	}
	return nil, invalidf(name, "%s declares no type parameter %s",
		decl.DeclarationName(), name)
}
