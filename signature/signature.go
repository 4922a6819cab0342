// Package signature translates JVM type signatures (JVMS 4.7.9.1) and
// field descriptors (JVMS 4.3.2) into mirror types. It is the boundary
// between compiler-native type handles — signature strings emitted by
// javac — and the symbolic model: every class reference inside a
// signature resolves through a mirror.Universe and parsing fails when a
// name or type variable cannot be resolved.
package signature

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jmirror/mirror"
)

var log = commonlog.GetLogger("jmirror.signature")

// Parser parses signatures against a universe of declared symbols.
// Type variables resolve through Scope, innermost declaration first.
type Parser struct {
	Universe *mirror.Universe
	Scope    []mirror.Declaration
}

func NewParser(u *mirror.Universe) *Parser {
	return &Parser{Universe: u}
}

// WithScope returns a parser that additionally resolves the type
// variables declared by decl. The receiver is not modified.
func (p *Parser) WithScope(decl mirror.Declaration) *Parser {
	scope := make([]mirror.Declaration, 0, len(p.Scope)+1)
	scope = append(scope, p.Scope...)
	return &Parser{Universe: p.Universe, Scope: append(scope, decl)}
}

// ParseType parses a single type signature, e.g.
//
//	I                                         int
//	[Ljava/lang/String;                       java.lang.String[]
//	Ljava/util/List<Ljava/lang/Integer;>;     java.util.List<java.lang.Integer>
//	Ljava/util/List<+Ljava/lang/Number;>;     java.util.List<? extends java.lang.Number>
//	TT;                                       the type variable T (needs a scope)
//
// Erased descriptors are signatures without type arguments, so ParseType
// subsumes descriptor parsing.
func (p *Parser) ParseType(sig string) (mirror.Type, error) {
	w := &walker{input: sig, parser: p}
	t, err := w.typeSignature()
	if err != nil {
		return nil, err
	}
	if w.pos != len(sig) {
		return nil, w.errorf("trailing input at offset %d", w.pos)
	}
	log.Debugf("parsed %q as %s", sig, t)
	return t, nil
}

// ParseClass parses a class signature — formal type parameters, generic
// superclass and superinterfaces, e.g.
//
//	<E:Ljava/lang/Object;>Ljava/util/AbstractList<TE;>;Ljava/util/List<TE;>;
//
// The resulting symbol is registered in the universe before bounds and
// supertypes are parsed, so self-referential signatures like Enum's
// <E:Ljava/lang/Enum<TE;>;> resolve against the symbol being built.
func (p *Parser) ParseClass(name string, kind mirror.ClassKind, sig string) (sym *mirror.Symbol, err error) {
	sym = &mirror.Symbol{Name: name, Kind: kind}
	// Registered before anything parses so that self-referential
	// signatures (Enum's <E:Ljava/lang/Enum<TE;>;>) resolve; a parse
	// failure must not leave the half-built symbol visible.
	prev, _ := p.Universe.Lookup(name)
	p.Universe.Define(sym)
	defer func() {
		if err == nil {
			return
		}
		if prev != nil {
			p.Universe.Define(prev)
		} else {
			p.Universe.Undefine(name)
		}
	}()
	w := &walker{input: sig, parser: p.WithScope(sym)}

	if w.peek() == '<' {
		params, perr := w.typeParameters(sym)
		if perr != nil {
			return nil, perr
		}
		sym.Params = params
	}

	super, serr := w.typeSignature()
	if serr != nil {
		return nil, serr
	}
	if !isObject(super) {
		sym.Super = super
	}
	for w.pos < len(w.input) {
		iface, ierr := w.typeSignature()
		if ierr != nil {
			return nil, ierr
		}
		sym.Interfaces = append(sym.Interfaces, iface)
	}
	log.Infof("declared %s with %d type parameters", name, len(sym.Params))
	return sym, nil
}

func isObject(t mirror.Type) bool {
	c, ok := t.(*mirror.ClassType)
	return ok && c.IsObject()
}

// walker steps through a signature byte by byte, in the style of the
// descriptor parser this grew out of.
type walker struct {
	input  string
	pos    int
	parser *Parser
}

func (w *walker) errorf(format string, args ...any) error {
	return fmt.Errorf("signature %q: %s", w.input, fmt.Sprintf(format, args...))
}

func (w *walker) peek() byte {
	if w.pos >= len(w.input) {
		return 0
	}
	return w.input[w.pos]
}

func (w *walker) next() byte {
	c := w.peek()
	w.pos++
	return c
}

func (w *walker) expect(c byte) error {
	if got := w.next(); got != c {
		return w.errorf("expected %q at offset %d, got %q", c, w.pos-1, got)
	}
	return nil
}

// typeParameters parses <Ident:ClassBound?(:InterfaceBound)*...>,
// attaching parameter names to sym before parsing any bound so that
// sibling and self references resolve.
func (w *walker) typeParameters(sym *mirror.Symbol) ([]mirror.TypeParam, error) {
	if err := w.expect('<'); err != nil {
		return nil, err
	}
	names, err := scanParameterNames(w.input, w.pos)
	if err != nil {
		return nil, w.errorf("%s", err)
	}
	for _, name := range names {
		sym.Params = append(sym.Params, mirror.TypeParam{Name: name})
	}

	var params []mirror.TypeParam
	for w.peek() != '>' {
		name, err := w.identifier(":")
		if err != nil {
			return nil, err
		}
		var bounds []mirror.Type
		if err := w.expect(':'); err != nil {
			return nil, err
		}
		if w.peek() != ':' && w.peek() != '>' && w.pos < len(w.input) {
			b, err := w.typeSignature()
			if err != nil {
				return nil, err
			}
			if !isObject(b) {
				bounds = append(bounds, b)
			}
		}
		for w.peek() == ':' {
			w.next()
			b, err := w.typeSignature()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, b)
		}
		params = append(params, mirror.TypeParam{Name: name, Bounds: bounds})
	}
	if err := w.expect('>'); err != nil {
		return nil, err
	}
	return params, nil
}

// scanParameterNames pre-scans the parameter section for the declared
// names without consuming input. Bounds can mention any sibling, so all
// names must be known before the first bound parses.
func scanParameterNames(s string, start int) ([]string, error) {
	var names []string
	i := start
	for i < len(s) && s[i] != '>' {
		j := strings.IndexByte(s[i:], ':')
		if j < 0 {
			return nil, fmt.Errorf("unterminated type parameter section")
		}
		names = append(names, s[i:i+j])
		i += j
		for i < len(s) && s[i] == ':' {
			i++
			// An empty class bound (T::Iface) leaves the next byte a
			// colon again.
			if i < len(s) && s[i] == ':' {
				continue
			}
			n, err := skipTypeSignature(s, i)
			if err != nil {
				return nil, err
			}
			i = n
		}
	}
	return names, nil
}

// skipTypeSignature advances past one type signature without resolving
// anything, returning the index just after it.
func skipTypeSignature(s string, i int) (int, error) {
	for i < len(s) && s[i] == '[' {
		i++
	}
	if i >= len(s) {
		return 0, fmt.Errorf("unexpected end of signature")
	}
	switch s[i] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		return i + 1, nil
	case 'T':
		j := strings.IndexByte(s[i:], ';')
		if j < 0 {
			return 0, fmt.Errorf("unterminated type variable")
		}
		return i + j + 1, nil
	case 'L':
		i++
		for i < len(s) {
			switch s[i] {
			case ';':
				return i + 1, nil
			case '<':
				i++
				for i < len(s) && s[i] != '>' {
					if s[i] == '*' {
						i++
						continue
					}
					if s[i] == '+' || s[i] == '-' {
						i++
					}
					n, err := skipTypeSignature(s, i)
					if err != nil {
						return 0, err
					}
					i = n
				}
				i++
			default:
				i++
			}
		}
		return 0, fmt.Errorf("unterminated class type signature")
	}
	return 0, fmt.Errorf("unexpected %q in signature", s[i])
}

func (w *walker) identifier(terminators string) (string, error) {
	start := w.pos
	for w.pos < len(w.input) && strings.IndexByte(terminators, w.input[w.pos]) < 0 {
		w.pos++
	}
	if w.pos == start {
		return "", w.errorf("expected identifier at offset %d", start)
	}
	return w.input[start:w.pos], nil
}

func (w *walker) typeSignature() (mirror.Type, error) {
	depth := 0
	for w.peek() == '[' {
		w.next()
		depth++
	}
	var t mirror.Type
	var err error
	switch c := w.peek(); c {
	case 'L':
		t, err = w.classTypeSignature()
	case 'T':
		t, err = w.typeVariable()
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		w.next()
		t = basicType(c)
		if depth > 0 && c == 'V' {
			return nil, w.errorf("void cannot be an array component")
		}
	case 0:
		return nil, w.errorf("unexpected end of input")
	default:
		return nil, w.errorf("unexpected %q at offset %d", c, w.pos)
	}
	if err != nil {
		return nil, err
	}
	return arrayOf(t, depth), nil
}

func arrayOf(t mirror.Type, depth int) mirror.Type {
	if depth == 0 {
		return t
	}
	if c, ok := t.(*mirror.ClassType); ok {
		return c.WithArrayDepth(c.ArrayDepth + depth)
	}
	for i := 0; i < depth; i++ {
		t = &mirror.GenericArrayType{Component: t}
	}
	return t
}

func basicType(c byte) *mirror.ClassType {
	switch c {
	case 'B':
		return mirror.PrimitiveByte
	case 'C':
		return mirror.PrimitiveChar
	case 'D':
		return mirror.PrimitiveDouble
	case 'F':
		return mirror.PrimitiveFloat
	case 'I':
		return mirror.PrimitiveInt
	case 'J':
		return mirror.PrimitiveLong
	case 'S':
		return mirror.PrimitiveShort
	case 'Z':
		return mirror.PrimitiveBoolean
	}
	return mirror.Void
}

func (w *walker) typeVariable() (mirror.Type, error) {
	if err := w.expect('T'); err != nil {
		return nil, err
	}
	name, err := w.identifier(";")
	if err != nil {
		return nil, err
	}
	if err := w.expect(';'); err != nil {
		return nil, err
	}
	for i := len(w.parser.Scope) - 1; i >= 0; i-- {
		decl := w.parser.Scope[i]
		for _, p := range decl.TypeParameters() {
			if p.Name == name {
				return &mirror.TypeVariable{Name: name, Decl: decl}, nil
			}
		}
	}
	return nil, w.errorf("unresolved type variable %s", name)
}

func (w *walker) classTypeSignature() (mirror.Type, error) {
	if err := w.expect('L'); err != nil {
		return nil, err
	}
	name, err := w.identifier("<.;")
	if err != nil {
		return nil, err
	}
	t, err := w.classSegment(InternalToSourceName(name), nil)
	if err != nil {
		return nil, err
	}
	for w.peek() == '.' {
		w.next()
		simple, err := w.identifier("<.;")
		if err != nil {
			return nil, err
		}
		t, err = w.classSegment(erasureName(t)+"."+simple, t)
		if err != nil {
			return nil, err
		}
	}
	if err := w.expect(';'); err != nil {
		return nil, err
	}
	return t, nil
}

func erasureName(t mirror.Type) string {
	return mirror.Erasure(t).Name
}

// classSegment resolves one dotted segment of a class type signature
// and applies its type arguments, if any. owner carries generic
// information from the enclosing segments.
func (w *walker) classSegment(name string, owner mirror.Type) (mirror.Type, error) {
	sym, err := w.parser.Universe.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("signature %q: %w", w.input, err)
	}
	raw := sym.Class()
	if w.peek() != '<' {
		if pt, ok := owner.(*mirror.ParameterizedType); ok && !sym.Static {
			// A non-static member keeps its owner's generic context
			// even without arguments of its own.
			return &mirror.ParameterizedType{Raw: raw, Owner: pt}, nil
		}
		return raw, nil
	}
	w.next()
	var args []mirror.Type
	for w.peek() != '>' {
		arg, err := w.typeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	w.next()
	pt := &mirror.ParameterizedType{Raw: raw, Args: args}
	if _, ok := owner.(*mirror.ParameterizedType); ok && !sym.Static {
		pt.Owner = owner
	}
	return pt, nil
}

func (w *walker) typeArgument() (mirror.Type, error) {
	switch w.peek() {
	case '*':
		w.next()
		return mirror.Unbounded, nil
	case '+':
		w.next()
		bound, err := w.typeSignature()
		if err != nil {
			return nil, err
		}
		return mirror.NewExtendsWildcard(bound)
	case '-':
		w.next()
		bound, err := w.typeSignature()
		if err != nil {
			return nil, err
		}
		return mirror.NewSuperWildcard(bound)
	}
	return w.typeSignature()
}

// InternalToSourceName converts a JVM internal name to its dotted
// source spelling.
func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// SourceToInternalName converts a dotted source name to the JVM
// internal form.
func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
