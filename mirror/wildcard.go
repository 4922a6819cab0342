package mirror

// WildcardType is the unnamed placeholder "?", optionally bounded from
// above ("? extends Number") or below ("? super Integer") — never both.
// Build bounded wildcards with NewExtendsWildcard and NewSuperWildcard;
// Unbounded is the shared plain "?".
type WildcardType struct {
	Upper Type
	Lower Type
}

// Unbounded is the plain "?" wildcard.
var Unbounded = &WildcardType{}

func (t *WildcardType) Kind() Kind { return KindWildcard }

func (t *WildcardType) String() string {
	switch {
	case t.Lower != nil:
		return "? super " + t.Lower.String()
	case t.Upper != nil:
		return "? extends " + t.Upper.String()
	}
	return "?"
}

// IsUnbounded reports whether this is the plain "?" (no explicit bound
// in either direction).
func (t *WildcardType) IsUnbounded() bool {
	return t.Upper == nil && t.Lower == nil
}

// EffectiveUpper is the upper bound used for capture: the explicit
// extends-bound, or java.lang.Object when unbounded or super-bounded.
func (t *WildcardType) EffectiveUpper() Type {
	if t.Upper != nil {
		return t.Upper
	}
	return &ClassType{Name: ObjectClass}
}

func (t *WildcardType) Equal(other Type) bool {
	o, ok := other.(*WildcardType)
	if !ok {
		return false
	}
	if (t.Upper == nil) != (o.Upper == nil) || (t.Lower == nil) != (o.Lower == nil) {
		return false
	}
	if t.Upper != nil && !t.Upper.Equal(o.Upper) {
		return false
	}
	if t.Lower != nil && !t.Lower.Equal(o.Lower) {
		return false
	}
	return true
}

func (t *WildcardType) Hash() uint32 {
	h := uint32(hashSeed) + uint32(KindWildcard)
	if t.Upper != nil {
		h = hashCombine(h, t.Upper.Hash())
	}
	if t.Lower != nil {
		h = hashCombine(h, 1+t.Lower.Hash())
	}
	return h
}
