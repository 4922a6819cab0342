package mirror

import "sort"

// Universe is the declared-symbol table types resolve through. A fresh
// universe already knows the implicitly-imported java.lang core and the
// java.util collections spine, enough to answer assignability over the
// types tooling meets most; callers Define anything else before
// resolving references to it.
//
// Lookup of an unknown name fails with *UnresolvedError — the universe
// never fabricates a placeholder symbol.
type Universe struct {
	symbols map[string]*Symbol
}

// NewUniverse returns a universe seeded with the builtin symbols.
func NewUniverse() *Universe {
	u := &Universe{symbols: make(map[string]*Symbol)}
	u.seed()
	return u
}

// Define registers sym, replacing any previous symbol of the same name.
func (u *Universe) Define(sym *Symbol) {
	u.symbols[sym.Name] = sym
}

// Undefine removes a symbol by name, if present.
func (u *Universe) Undefine(name string) {
	delete(u.symbols, name)
}

// Lookup finds a symbol by qualified name.
func (u *Universe) Lookup(name string) (*Symbol, error) {
	if sym, ok := u.symbols[name]; ok {
		return sym, nil
	}
	return nil, &UnresolvedError{Name: name}
}

// Class resolves a qualified name, a primitive keyword or "void" into a
// class-like type reference.
func (u *Universe) Class(name string) (*ClassType, error) {
	if p := PrimitiveByName(name); p != nil {
		return p, nil
	}
	if name == "void" {
		return Void, nil
	}
	sym, err := u.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sym.Class(), nil
}

// MustClass is Class for names known to be present; it panics otherwise
// and exists for tests and wiring code.
func (u *Universe) MustClass(name string) *ClassType {
	c, err := u.Class(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names lists all defined symbol names, sorted.
func (u *Universe) Names() []string {
	names := make([]string, 0, len(u.symbols))
	for name := range u.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *Universe) class(name string, params ...string) *Symbol {
	return u.define(name, ClassKindClass, params)
}

func (u *Universe) iface(name string, params ...string) *Symbol {
	return u.define(name, ClassKindInterface, params)
}

func (u *Universe) define(name string, kind ClassKind, params []string) *Symbol {
	sym := &Symbol{Name: name, Kind: kind}
	for _, p := range params {
		sym.Params = append(sym.Params, TypeParam{Name: p})
	}
	u.symbols[name] = sym
	return sym
}

// applied instantiates sym over the given arguments without factory
// validation; the seed wires supertypes over symbols' own variables.
func applied(sym *Symbol, args ...Type) *ParameterizedType {
	return &ParameterizedType{Raw: sym.Class(), Args: args}
}

func tv(decl Declaration, name string) *TypeVariable {
	return &TypeVariable{Name: name, Decl: decl}
}

func (u *Universe) seed() {
	object := u.class(ObjectClass)

	comparable := u.iface("java.lang.Comparable", "T")
	charSeq := u.iface("java.lang.CharSequence")
	serializable := u.iface(serializableClass)
	cloneable := u.iface(cloneableClass)
	iterable := u.iface("java.lang.Iterable", "T")
	u.iface("java.lang.Runnable")
	u.iface("java.lang.AutoCloseable")
	u.iface("java.lang.annotation.Annotation")

	str := u.class("java.lang.String")
	str.Super = object.Class()
	str.Interfaces = []Type{charSeq.Class(), applied(comparable, str.Class()), serializable.Class()}

	sb := u.class("java.lang.StringBuilder")
	sb.Super = object.Class()
	sb.Interfaces = []Type{charSeq.Class(), serializable.Class()}

	number := u.class("java.lang.Number")
	number.Super = object.Class()
	number.Interfaces = []Type{serializable.Class()}

	for _, name := range []string{"Byte", "Short", "Integer", "Long", "Float", "Double"} {
		box := u.class("java.lang." + name)
		box.Super = number.Class()
		box.Interfaces = []Type{applied(comparable, box.Class())}
	}
	for _, name := range []string{"Character", "Boolean"} {
		box := u.class("java.lang." + name)
		box.Super = object.Class()
		box.Interfaces = []Type{applied(comparable, box.Class()), serializable.Class()}
	}

	class := u.class("java.lang.Class", "T")
	class.Super = object.Class()
	class.Interfaces = []Type{serializable.Class()}

	// Enum's parameter bound refers back to Enum itself, so the bound
	// is attached after the symbol exists.
	enum := u.class("java.lang.Enum", "E")
	enum.Super = object.Class()
	enum.Params[0].Bounds = []Type{applied(enum, tv(enum, "E"))}
	enum.Interfaces = []Type{applied(comparable, tv(enum, "E")), serializable.Class()}

	throwable := u.class("java.lang.Throwable")
	throwable.Super = object.Class()
	throwable.Interfaces = []Type{serializable.Class()}
	exception := u.class("java.lang.Exception")
	exception.Super = throwable.Class()
	runtimeEx := u.class("java.lang.RuntimeException")
	runtimeEx.Super = exception.Class()
	u.class("java.lang.Error").Super = throwable.Class()
	u.class("java.lang.IllegalArgumentException").Super = runtimeEx.Class()

	u.iface("java.util.Iterator", "E")

	collection := u.iface("java.util.Collection", "E")
	collection.Interfaces = []Type{applied(iterable, tv(collection, "E"))}

	list := u.iface("java.util.List", "E")
	list.Interfaces = []Type{applied(collection, tv(list, "E"))}

	set := u.iface("java.util.Set", "E")
	set.Interfaces = []Type{applied(collection, tv(set, "E"))}

	sortedSet := u.iface("java.util.SortedSet", "E")
	sortedSet.Interfaces = []Type{applied(set, tv(sortedSet, "E"))}

	queue := u.iface("java.util.Queue", "E")
	queue.Interfaces = []Type{applied(collection, tv(queue, "E"))}

	deque := u.iface("java.util.Deque", "E")
	deque.Interfaces = []Type{applied(queue, tv(deque, "E"))}

	absCollection := u.class("java.util.AbstractCollection", "E")
	absCollection.Super = object.Class()
	absCollection.Interfaces = []Type{applied(collection, tv(absCollection, "E"))}

	absList := u.class("java.util.AbstractList", "E")
	absList.Super = applied(absCollection, tv(absList, "E"))
	absList.Interfaces = []Type{applied(list, tv(absList, "E"))}

	arrayList := u.class("java.util.ArrayList", "E")
	arrayList.Super = applied(absList, tv(arrayList, "E"))
	arrayList.Interfaces = []Type{applied(list, tv(arrayList, "E")), cloneable.Class(), serializable.Class()}

	linkedList := u.class("java.util.LinkedList", "E")
	linkedList.Super = applied(absList, tv(linkedList, "E"))
	linkedList.Interfaces = []Type{applied(list, tv(linkedList, "E")), applied(deque, tv(linkedList, "E"))}

	hashSet := u.class("java.util.HashSet", "E")
	hashSet.Super = applied(absCollection, tv(hashSet, "E"))
	hashSet.Interfaces = []Type{applied(set, tv(hashSet, "E")), cloneable.Class(), serializable.Class()}

	m := u.iface("java.util.Map", "K", "V")

	entry := u.iface("java.util.Map.Entry", "K", "V")
	entry.Static = true
	entry.Outer = m

	sortedMap := u.iface("java.util.SortedMap", "K", "V")
	sortedMap.Interfaces = []Type{applied(m, tv(sortedMap, "K"), tv(sortedMap, "V"))}

	absMap := u.class("java.util.AbstractMap", "K", "V")
	absMap.Super = object.Class()
	absMap.Interfaces = []Type{applied(m, tv(absMap, "K"), tv(absMap, "V"))}

	hashMap := u.class("java.util.HashMap", "K", "V")
	hashMap.Super = applied(absMap, tv(hashMap, "K"), tv(hashMap, "V"))
	hashMap.Interfaces = []Type{applied(m, tv(hashMap, "K"), tv(hashMap, "V")), cloneable.Class(), serializable.Class()}

	treeMap := u.class("java.util.TreeMap", "K", "V")
	treeMap.Super = applied(absMap, tv(treeMap, "K"), tv(treeMap, "V"))
	treeMap.Interfaces = []Type{applied(sortedMap, tv(treeMap, "K"), tv(treeMap, "V")), cloneable.Class(), serializable.Class()}

	optional := u.class("java.util.Optional", "T")
	optional.Super = object.Class()

	u.iface("java.util.function.Function", "T", "R")
	u.iface("java.util.function.BiFunction", "T", "U", "R")
	u.iface("java.util.function.Supplier", "T")
	u.iface("java.util.function.Consumer", "T")
	u.iface("java.util.function.Predicate", "T")
}
