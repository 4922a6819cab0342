package mirror

import "testing"

func TestClassTypeString(t *testing.T) {
	u := NewUniverse()

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"class", u.MustClass("java.lang.String"), "java.lang.String"},
		{"primitive", PrimitiveInt, "int"},
		{"void", Void, "void"},
		{"primitive array", PrimitiveArray("int", 2), "int[][]"},
		{"class array", u.MustClass("java.lang.String").WithArrayDepth(1), "java.lang.String[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassTypePredicates(t *testing.T) {
	u := NewUniverse()
	str := u.MustClass("java.lang.String")

	if !PrimitiveInt.IsPrimitive() {
		t.Error("Expected int to be primitive")
	}
	if PrimitiveArray("int", 1).IsPrimitive() {
		t.Error("Expected int[] not to be primitive")
	}
	if !PrimitiveArray("int", 1).IsPrimitiveArray() {
		t.Error("Expected int[] to be a primitive array")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected PrimitiveArray of a class name to panic")
			}
		}()
		PrimitiveArray("java.lang.String", 1)
	}()
	if !Void.IsVoid() {
		t.Error("Expected void to be void")
	}
	if str.IsArray() {
		t.Error("Expected String not to be an array")
	}
	if !u.MustClass("java.lang.Object").IsObject() {
		t.Error("Expected Object to be Object")
	}
}

func TestClassTypeSimpleName(t *testing.T) {
	u := NewUniverse()

	tests := []struct {
		name string
		want string
	}{
		{"java.lang.String", "String"},
		{"java.util.Map.Entry", "Entry"},
		{"int", "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := u.Class(tt.name)
			if err != nil {
				t.Fatalf("Class(%q) failed: %v", tt.name, err)
			}
			if got := c.SimpleName(); got != tt.want {
				t.Errorf("SimpleName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassTypeElementType(t *testing.T) {
	arr := PrimitiveArray("int", 2)
	if got := arr.ElementType().String(); got != "int[]" {
		t.Errorf("ElementType() = %q, want %q", got, "int[]")
	}
	if got := arr.ElementType().ElementType().String(); got != "int" {
		t.Errorf("ElementType().ElementType() = %q, want %q", got, "int")
	}
}

// Erasure equality: two class-like references to the same declaration
// are equal regardless of how each was obtained.
func TestClassTypeErasureEquality(t *testing.T) {
	u := NewUniverse()

	fromUniverse := u.MustClass("java.util.List")
	byName := &ClassType{Name: "java.util.List"}

	if !fromUniverse.Equal(byName) {
		t.Error("Expected resolved and name-only references to be equal")
	}
	if fromUniverse.Hash() != byName.Hash() {
		t.Error("Expected equal types to hash identically")
	}
	if fromUniverse.Equal(byName.WithArrayDepth(1)) {
		t.Error("Expected List and List[] to differ")
	}
}
