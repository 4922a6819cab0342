package mirror

import "strings"

// ParameterizedType is a generic type applied to arguments, e.g.
// java.util.Map<java.lang.String,java.lang.Integer>. Owner is set when
// the raw type is a non-static member of a generic enclosing type, as in
// Outer<A>.Inner<B>; it is nil otherwise.
//
// Build these with NewParameterizedType, which validates argument count,
// bounds and owner consistency. Direct construction skips validation and
// is reserved for sources that already verified the type (the signature
// parser, substitution).
type ParameterizedType struct {
	Raw   *ClassType
	Owner Type
	Args  []Type
}

func (t *ParameterizedType) Kind() Kind { return KindParameterized }

func (t *ParameterizedType) String() string {
	var sb strings.Builder
	if t.Owner != nil {
		sb.WriteString(t.Owner.String())
		sb.WriteByte('.')
		sb.WriteString(t.Raw.SimpleName())
	} else {
		sb.WriteString(t.Raw.Name)
	}
	// A non-static member without parameters of its own carries only
	// its owner's generic context and renders without an argument
	// section.
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	return sb.String()
}

// Erasure is the raw class-like form with all argument information
// dropped.
func (t *ParameterizedType) Erasure() *ClassType { return t.Raw }

// Equality covers owner, raw type and arguments, in that order — the
// same order String renders them in.
func (t *ParameterizedType) Equal(other Type) bool {
	o, ok := other.(*ParameterizedType)
	if !ok {
		return false
	}
	if (t.Owner == nil) != (o.Owner == nil) {
		return false
	}
	if t.Owner != nil && !t.Owner.Equal(o.Owner) {
		return false
	}
	if !t.Raw.Equal(o.Raw) {
		return false
	}
	if len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (t *ParameterizedType) Hash() uint32 {
	h := uint32(hashSeed) + uint32(KindParameterized)
	if t.Owner != nil {
		h = hashCombine(h, t.Owner.Hash())
	}
	h = hashCombine(h, t.Raw.Hash())
	for _, a := range t.Args {
		h = hashCombine(h, a.Hash())
	}
	return h
}
