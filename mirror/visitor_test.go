package mirror

import (
	"errors"
	"testing"
)

// kindNamer overrides two variant methods and leaves the rest to the
// default action.
type kindNamer struct {
	BaseVisitor
}

func (v *kindNamer) VisitClass(t *ClassType, arg any) (any, error) {
	return "class:" + t.String(), nil
}

func (v *kindNamer) VisitWildcard(t *WildcardType, arg any) (any, error) {
	return "wildcard:" + t.String(), nil
}

// foreignType is a Type implementation outside the five known variants.
type foreignType struct{}

func (foreignType) Kind() Kind            { return Kind(99) }
func (foreignType) String() string        { return "foreign" }
func (foreignType) Equal(other Type) bool { return false }
func (foreignType) Hash() uint32          { return 0 }

func TestVisitDispatch(t *testing.T) {
	u := NewUniverse()
	v := &kindNamer{}

	t.Run("overridden variant", func(t *testing.T) {
		got, err := Visit(v, u.MustClass("java.lang.String"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != "class:java.lang.String" {
			t.Errorf("Visit = %v, want %q", got, "class:java.lang.String")
		}
	})

	t.Run("second overridden variant", func(t *testing.T) {
		got, err := Visit(v, Unbounded, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != "wildcard:?" {
			t.Errorf("Visit = %v, want %q", got, "wildcard:?")
		}
	})

	t.Run("unoverridden variant uses default action", func(t *testing.T) {
		pt := mustParameterized(t, u, "java.util.List", u.MustClass("java.lang.Integer"))
		got, err := Visit(v, pt, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("Visit = %v, want nil (neutral default)", got)
		}
	})
}

func TestVisitDefaultHook(t *testing.T) {
	v := &BaseVisitor{
		Default: func(t Type, arg any) (any, error) {
			return t.Kind().String(), nil
		},
	}

	got, err := Visit(v, PrimitiveInt, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "class" {
		t.Errorf("Visit = %v, want %q", got, "class")
	}
}

func TestVisitUnknownKind(t *testing.T) {
	t.Run("no catch-all override", func(t *testing.T) {
		_, err := Visit(&kindNamer{}, foreignType{}, nil)
		var unknown *UnknownTypeKindError
		if !errors.As(err, &unknown) {
			t.Fatalf("Expected UnknownTypeKindError, got %v", err)
		}
	})

	t.Run("default hook does not catch foreign types", func(t *testing.T) {
		v := &BaseVisitor{Default: func(t Type, arg any) (any, error) { return "caught", nil }}
		if _, err := Visit(v, foreignType{}, nil); err == nil {
			t.Error("Expected the default hook not to receive foreign types")
		}
	})

	t.Run("catch-all override", func(t *testing.T) {
		got, err := Visit(&catchAll{}, foreignType{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got != "handled" {
			t.Errorf("Visit = %v, want %q", got, "handled")
		}
	})
}

type catchAll struct {
	BaseVisitor
}

func (v *catchAll) VisitUnknown(t Type, arg any) (any, error) {
	return "handled", nil
}

func TestVisitPassesArgument(t *testing.T) {
	v := &BaseVisitor{
		Default: func(t Type, arg any) (any, error) {
			return arg, nil
		},
	}
	got, err := Visit(v, PrimitiveInt, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("Visit = %v, want 42", got)
	}
}
