package mirror

// Visitor receives double-dispatch over the five type variants. Embed
// BaseVisitor and override only the methods you care about; the rest
// fall through to the default action. VisitUnknown is the catch-all for
// type implementations outside the known variant set — BaseVisitor's
// version fails with *UnknownTypeKindError, so a foreign type is never
// silently mishandled.
type Visitor interface {
	VisitClass(t *ClassType, arg any) (any, error)
	VisitParameterized(t *ParameterizedType, arg any) (any, error)
	VisitGenericArray(t *GenericArrayType, arg any) (any, error)
	VisitTypeVariable(t *TypeVariable, arg any) (any, error)
	VisitWildcard(t *WildcardType, arg any) (any, error)
	VisitUnknown(t Type, arg any) (any, error)
}

// Visit dispatches t to the matching visitor method.
func Visit(v Visitor, t Type, arg any) (any, error) {
	switch t := t.(type) {
	case *ClassType:
		return v.VisitClass(t, arg)
	case *ParameterizedType:
		return v.VisitParameterized(t, arg)
	case *GenericArrayType:
		return v.VisitGenericArray(t, arg)
	case *TypeVariable:
		return v.VisitTypeVariable(t, arg)
	case *WildcardType:
		return v.VisitWildcard(t, arg)
	}
	return v.VisitUnknown(t, arg)
}

// BaseVisitor implements Visitor with a shared default action. A nil
// Default yields (nil, nil) for every unoverridden variant method.
type BaseVisitor struct {
	Default func(t Type, arg any) (any, error)
}

func (b *BaseVisitor) defaultAction(t Type, arg any) (any, error) {
	if b.Default != nil {
		return b.Default(t, arg)
	}
	return nil, nil
}

func (b *BaseVisitor) VisitClass(t *ClassType, arg any) (any, error) {
	return b.defaultAction(t, arg)
}

func (b *BaseVisitor) VisitParameterized(t *ParameterizedType, arg any) (any, error) {
	return b.defaultAction(t, arg)
}

func (b *BaseVisitor) VisitGenericArray(t *GenericArrayType, arg any) (any, error) {
	return b.defaultAction(t, arg)
}

func (b *BaseVisitor) VisitTypeVariable(t *TypeVariable, arg any) (any, error) {
	return b.defaultAction(t, arg)
}

func (b *BaseVisitor) VisitWildcard(t *WildcardType, arg any) (any, error) {
	return b.defaultAction(t, arg)
}

// VisitUnknown deliberately does not share the default action: not
// overriding a known variant is a choice, a type outside the variant
// set is a bug or a forward-compatibility gap.
func (b *BaseVisitor) VisitUnknown(t Type, arg any) (any, error) {
	return nil, &UnknownTypeKindError{Type: t}
}
