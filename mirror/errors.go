package mirror

import "fmt"

// InvalidTypeArgumentsError reports a violated construction invariant:
// wrong argument count, a bound that does not hold, a primitive used as
// a type argument, owner mismatches, and so on. Construction either
// succeeds fully or fails with one of these; no partial value escapes.
type InvalidTypeArgumentsError struct {
	// Rendering is the canonical string of the offending type or
	// argument.
	Rendering string
	Reason    string
}

func (e *InvalidTypeArgumentsError) Error() string {
	return fmt.Sprintf("invalid type arguments for %s: %s", e.Rendering, e.Reason)
}

func invalidf(rendering string, format string, args ...any) error {
	return &InvalidTypeArgumentsError{
		Rendering: rendering,
		Reason:    fmt.Sprintf(format, args...),
	}
}

// UnknownTypeKindError reports a Type implementation outside the five
// known variants reaching the dispatch engine with no catch-all to
// receive it.
type UnknownTypeKindError struct {
	Type Type
}

func (e *UnknownTypeKindError) Error() string {
	return fmt.Sprintf("unknown type kind %T (%s)", e.Type, e.Type)
}

// UnresolvedError reports a qualified name with no symbol in the
// universe. Resolution never substitutes a placeholder.
type UnresolvedError struct {
	Name string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved type: %s", e.Name)
}
