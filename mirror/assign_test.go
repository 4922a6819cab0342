package mirror

import "testing"

func extendsW(t *testing.T, bound Type) *WildcardType {
	t.Helper()
	w, err := NewExtendsWildcard(bound)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func superW(t *testing.T, bound Type) *WildcardType {
	t.Helper()
	w, err := NewSuperWildcard(bound)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestIsAssignableReflexive(t *testing.T) {
	u := NewUniverse()
	integer := u.MustClass("java.lang.Integer")
	listOfInt := mustParameterized(t, u, "java.util.List", integer)
	arr, err := NewGenericArrayType(listOfInt)
	if err != nil {
		t.Fatal(err)
	}
	variable, err := NewTypeVariable(mustLookup(t, u, "java.util.List"), "E")
	if err != nil {
		t.Fatal(err)
	}

	types := []Type{
		integer,
		PrimitiveInt,
		PrimitiveArray("int", 1),
		Void,
		listOfInt,
		arr,
		variable,
		Unbounded,
		extendsW(t, u.MustClass("java.lang.Number")),
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			if !typ.Equal(typ) {
				t.Error("Expected Equal to be reflexive")
			}
			if !IsAssignable(typ, typ) {
				t.Error("Expected IsAssignable to be reflexive")
			}
		})
	}
}

func TestIsAssignableToObject(t *testing.T) {
	u := NewUniverse()
	object := u.MustClass("java.lang.Object")

	tests := []struct {
		name   string
		source Type
		want   bool
	}{
		{"class", u.MustClass("java.lang.String"), true},
		{"primitive", PrimitiveInt, false},
		{"void", Void, false},
		{"primitive array", PrimitiveArray("int", 1), true},
		{"class array", u.MustClass("java.lang.String").WithArrayDepth(1), true},
		{"parameterized", mustParameterized(t, u, "java.util.List", u.MustClass("java.lang.Integer")), true},
		{"super wildcard", superW(t, u.MustClass("java.lang.Integer")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAssignable(object, tt.source); got != tt.want {
				t.Errorf("IsAssignable(Object, %s) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestIsAssignableArrays(t *testing.T) {
	u := NewUniverse()
	objectArr := u.MustClass("java.lang.Object").WithArrayDepth(1)
	stringArr := u.MustClass("java.lang.String").WithArrayDepth(1)

	tests := []struct {
		name           string
		target, source Type
		want           bool
	}{
		{"reference covariance", objectArr, stringArr, true},
		{"covariance is one-way", stringArr, objectArr, false},
		{"primitive arrays are invariant", PrimitiveArray("int", 1), PrimitiveArray("long", 1), false},
		{"primitive array is not a reference array", objectArr, PrimitiveArray("int", 1), false},
		{"nested primitive array is a reference array", objectArr, PrimitiveArray("int", 2), true},
		{"array depth matters", objectArr, u.MustClass("java.lang.String").WithArrayDepth(2), true},
		{"serializable accepts arrays", u.MustClass("java.io.Serializable"), stringArr, true},
		{"cloneable accepts arrays", u.MustClass("java.lang.Cloneable"), PrimitiveArray("int", 1), true},
		{"supertype component", u.MustClass("java.lang.Number").WithArrayDepth(1), u.MustClass("java.lang.Integer").WithArrayDepth(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAssignable(tt.target, tt.source); got != tt.want {
				t.Errorf("IsAssignable(%s, %s) = %v, want %v", tt.target, tt.source, got, tt.want)
			}
		})
	}
}

func TestIsAssignablePrimitives(t *testing.T) {
	if !IsAssignable(PrimitiveInt, PrimitiveInt) {
		t.Error("Expected int to accept int")
	}
	if IsAssignable(PrimitiveLong, PrimitiveInt) {
		t.Error("Expected no widening from int to long")
	}
	if IsAssignable(PrimitiveInt, PrimitiveLong) {
		t.Error("Expected no narrowing from long to int")
	}
}

func TestIsAssignableNominal(t *testing.T) {
	u := NewUniverse()

	tests := []struct {
		name           string
		target, source string
		want           bool
	}{
		{"direct supertype", "java.lang.Number", "java.lang.Integer", true},
		{"transitive supertype", "java.lang.Object", "java.util.ArrayList", true},
		{"interface supertype", "java.util.Collection", "java.util.ArrayList", true},
		{"unrelated", "java.lang.String", "java.lang.Integer", false},
		{"subtype direction", "java.lang.Integer", "java.lang.Number", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAssignable(u.MustClass(tt.target), u.MustClass(tt.source))
			if got != tt.want {
				t.Errorf("IsAssignable(%s, %s) = %v, want %v", tt.target, tt.source, got, tt.want)
			}
		})
	}
}

func TestIsAssignableGenerics(t *testing.T) {
	u := NewUniverse()
	number := u.MustClass("java.lang.Number")
	integer := u.MustClass("java.lang.Integer")
	str := u.MustClass("java.lang.String")

	listExtendsNumber := mustParameterized(t, u, "java.util.List", extendsW(t, number))
	listSuperInteger := mustParameterized(t, u, "java.util.List", superW(t, integer))
	listOfNumber := mustParameterized(t, u, "java.util.List", number)
	listOfInteger := mustParameterized(t, u, "java.util.List", integer)
	arrayListOfInteger := mustParameterized(t, u, "java.util.ArrayList", integer)
	arrayListOfNumber := mustParameterized(t, u, "java.util.ArrayList", number)

	tests := []struct {
		name           string
		target, source Type
		want           bool
	}{
		{"wildcard capture extends", listExtendsNumber, arrayListOfInteger, true},
		{"wildcard capture super", listSuperInteger, arrayListOfNumber, true},
		{"invariance without wildcards", listOfNumber, arrayListOfInteger, false},
		{"exact argument through subtype", listOfInteger, arrayListOfInteger, true},
		{"extends rejects supertype argument", listExtendsNumber, mustParameterized(t, u, "java.util.ArrayList", u.MustClass("java.lang.Object")), false},
		{"super rejects subtype argument", mustParameterized(t, u, "java.util.List", superW(t, number)), arrayListOfInteger, false},
		{"raw target accepts parameterized", u.MustClass("java.util.List"), arrayListOfInteger, true},
		{"parameterized target rejects raw", listOfInteger, u.MustClass("java.util.ArrayList"), false},
		{"all-wildcard target accepts raw", mustParameterized(t, u, "java.util.List", Unbounded), u.MustClass("java.util.ArrayList"), true},
		{"unrelated argument", listOfInteger, mustParameterized(t, u, "java.util.ArrayList", str), false},
		{"nested wildcard containment", mustParameterized(t, u, "java.util.List", extendsW(t, listExtendsNumber)), mustParameterized(t, u, "java.util.ArrayList", mustParameterized(t, u, "java.util.ArrayList", integer)), true},
		{"non-generic source through generic interface", mustParameterized(t, u, "java.lang.Comparable", str), str, true},
		{"non-generic source with wrong argument", mustParameterized(t, u, "java.lang.Comparable", integer), str, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAssignable(tt.target, tt.source); got != tt.want {
				t.Errorf("IsAssignable(%s, %s) = %v, want %v", tt.target, tt.source, got, tt.want)
			}
		})
	}
}

// The scenario from the map of lists: invariant nested arguments.
func TestIsAssignableMapScenario(t *testing.T) {
	u := NewUniverse()
	str := u.MustClass("java.lang.String")
	integer := u.MustClass("java.lang.Integer")

	mapOfLists := mustParameterized(t, u, "java.util.Map",
		str, mustParameterized(t, u, "java.util.List", integer))
	mapOfCollections := mustParameterized(t, u, "java.util.Map",
		str, mustParameterized(t, u, "java.util.Collection", integer))

	if !IsAssignable(mapOfLists, mapOfLists) {
		t.Error("Expected the map type to accept itself")
	}
	if IsAssignable(mapOfLists, mapOfCollections) {
		t.Error("Expected invariant nested arguments to reject Collection for List")
	}
	if IsAssignable(mapOfCollections, mapOfLists) {
		t.Error("Expected invariant nested arguments to reject List for Collection")
	}

	want := "java.util.Map<java.lang.String,java.util.List<java.lang.Integer>>"
	if got := mapOfLists.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsAssignableGenericArrays(t *testing.T) {
	u := NewUniverse()
	integer := u.MustClass("java.lang.Integer")

	listOfIntegerArr, err := NewGenericArrayType(mustParameterized(t, u, "java.util.List", integer))
	if err != nil {
		t.Fatal(err)
	}
	arrayListOfIntegerArr, err := NewGenericArrayType(mustParameterized(t, u, "java.util.ArrayList", integer))
	if err != nil {
		t.Fatal(err)
	}

	if !IsAssignable(listOfIntegerArr, arrayListOfIntegerArr) {
		t.Error("Expected List<Integer>[] to accept ArrayList<Integer>[]")
	}
	if !IsAssignable(u.MustClass("java.lang.Object").WithArrayDepth(1), listOfIntegerArr) {
		t.Error("Expected Object[] to accept List<Integer>[]")
	}
	if !IsAssignable(u.MustClass("java.util.List").WithArrayDepth(1), listOfIntegerArr) {
		t.Error("Expected raw List[] to accept List<Integer>[]")
	}
	if IsAssignable(listOfIntegerArr, u.MustClass("java.util.List").WithArrayDepth(1)) {
		t.Error("Expected List<Integer>[] to reject raw List[]")
	}
}

func TestIsAssignableTypeVariables(t *testing.T) {
	u := NewUniverse()
	number := u.MustClass("java.lang.Number")

	box := &Symbol{
		Name:   "com.example.Box",
		Kind:   ClassKindClass,
		Params: []TypeParam{{Name: "T", Bounds: []Type{number}}},
	}
	u.Define(box)
	variable, err := NewTypeVariable(box, "T")
	if err != nil {
		t.Fatal(err)
	}

	if !IsAssignable(number, variable) {
		t.Error("Expected the variable's bound to make it a Number")
	}
	if !IsAssignable(u.MustClass("java.lang.Object"), variable) {
		t.Error("Expected any variable to be an Object")
	}
	if IsAssignable(u.MustClass("java.lang.Integer"), variable) {
		t.Error("Expected the variable not to be an Integer")
	}
	if IsAssignable(variable, number) {
		t.Error("Expected nothing but the variable itself to be assignable to it")
	}
	if !IsAssignable(variable, variable) {
		t.Error("Expected the variable to accept itself")
	}
}

func TestIsSubtypeOfWrappers(t *testing.T) {
	u := NewUniverse()
	number := u.MustClass("java.lang.Number")
	integer := u.MustClass("java.lang.Integer")

	if !IsSubtypeOf(integer, number) {
		t.Error("Expected Integer to be a subtype of Number")
	}
	if !IsSupertypeOf(number, integer) {
		t.Error("Expected Number to be a supertype of Integer")
	}
	if IsSubtypeOf(number, integer) {
		t.Error("Expected Number not to be a subtype of Integer")
	}
}

func mustLookup(t *testing.T, u *Universe, name string) *Symbol {
	t.Helper()
	sym, err := u.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return sym
}
