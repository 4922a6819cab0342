package mirror

import "strings"

// TypeParam is a declared type parameter, e.g. the T in
// "class Box<T extends Number>". An empty bound list means the implicit
// java.lang.Object bound.
type TypeParam struct {
	Name   string
	Bounds []Type
}

// Declaration is a construct that can declare type parameters: a class
// (*Symbol) or a method or constructor (*MethodSymbol). Type variables
// hold a Declaration back-reference and resolve their bounds through it
// by name, which keeps self-referential bounds such as
// "E extends Enum<E>" from recursing at construction time.
type Declaration interface {
	DeclarationName() string
	TypeParameters() []TypeParam
}

// Symbol is a declared class-like symbol: the compiler-side identity a
// ClassType resolves through. Supertypes are expressed over the symbol's
// own type variables ("ArrayList<E> implements List<E>"), so walking the
// ancestry of a parameterized reference is a substitution exercise.
type Symbol struct {
	// Name is the qualified source name, with nested types dotted onto
	// their enclosing type: "java.util.Map.Entry".
	Name string
	Kind ClassKind
	// Static is meaningful only for nested symbols; top-level symbols
	// are implicitly static for owner-type purposes.
	Static bool
	// Outer is the enclosing type's symbol, nil for top-level symbols.
	Outer  *Symbol
	Params []TypeParam
	// Super is the generic superclass, nil for java.lang.Object and for
	// interfaces without one.
	Super Type
	// Interfaces are the generic superinterfaces.
	Interfaces []Type
}

func (s *Symbol) DeclarationName() string     { return s.Name }
func (s *Symbol) TypeParameters() []TypeParam { return s.Params }
func (s *Symbol) IsInterface() bool           { return s.Kind == ClassKindInterface }
func (s *Symbol) IsGeneric() bool             { return len(s.Params) > 0 }
func (s *Symbol) IsTopLevel() bool            { return s.Outer == nil }

// SimpleName is the last dotted component of the qualified name.
func (s *Symbol) SimpleName() string {
	if i := strings.LastIndexByte(s.Name, '.'); i >= 0 {
		return s.Name[i+1:]
	}
	return s.Name
}

// TypeParameter looks up a declared parameter by name.
func (s *Symbol) TypeParameter(name string) (TypeParam, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return TypeParam{}, false
}

// Supertypes returns the generic superclass (if any) followed by the
// superinterfaces.
func (s *Symbol) Supertypes() []Type {
	var out []Type
	if s.Super != nil {
		out = append(out, s.Super)
	}
	return append(out, s.Interfaces...)
}

// Class returns a plain (erased) reference to this symbol.
func (s *Symbol) Class() *ClassType {
	return &ClassType{Name: s.Name, Symbol: s}
}

// Variable returns the symbol's declared type variable by name.
func (s *Symbol) Variable(name string) (*TypeVariable, bool) {
	if _, ok := s.TypeParameter(name); !ok {
		return nil, false
	}
	return &TypeVariable{Name: name, Decl: s}, true
}

// MethodSymbol is a method or constructor that declares its own type
// parameters, e.g. "static <T> List<T> of(T... xs)". Constructors use
// the name "<init>" by JVM convention.
type MethodSymbol struct {
	Name   string
	Owner  *Symbol
	Params []TypeParam
}

func (m *MethodSymbol) DeclarationName() string {
	if m.Owner != nil {
		return m.Owner.Name + "#" + m.Name
	}
	return m.Name
}

func (m *MethodSymbol) TypeParameters() []TypeParam { return m.Params }
