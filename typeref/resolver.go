package typeref

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidRaw is returned when a raw declaration has no name.
var ErrInvalidRaw = errors.New("raw type has no name")

// ErrArity is returned when the number of type parameters does not match the declaration.
var ErrArity = errors.New("type parameter count mismatch")

// Resolver produces canonical type references, parameterizing generic declarations.
type Resolver interface {
	Resolve(raw Raw, params ...Ref) (Ref, error)
}

// DefaultResolver is the stateless Resolver used by the documentation pipeline.
type DefaultResolver struct{}

// NewResolver creates a new DefaultResolver.
func NewResolver() *DefaultResolver {
	return &DefaultResolver{}
}

// Resolve returns the reference for raw parameterized by params.
// Resolving a generic declaration without parameters yields its bare reference.
func (*DefaultResolver) Resolve(raw Raw, params ...Ref) (Ref, error) {
	if raw.Name == "" {
		return Ref{}, ErrInvalidRaw
	}

	if len(params) != 0 && len(params) != raw.Arity {
		return Ref{}, fmt.Errorf("%w: %s expects %d, got %d", ErrArity, raw.Bare(), raw.Arity, len(params))
	}

	ref := raw.Bare()
	if len(params) > 0 {
		ref.args = make([]Ref, len(params))
		copy(ref.args, params)
	}

	return ref, nil
}

// RawOf returns the declaration of a named Go type.
// For an instantiated generic type the instantiation suffix is dropped.
func RawOf(t reflect.Type, arity int) Raw {
	return Raw{
		Pkg:   t.PkgPath(),
		Name:  trimInstantiation(t.Name()),
		Arity: arity,
	}
}

// FromType converts a Go type to a reference.
// Pointers are dereferenced, empty interfaces become "any", maps and slices keep
// their element types. reflect does not expose the arguments of an instantiated
// generic type, so such types are returned bare.
func FromType(t reflect.Type) Ref {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() != "" {
		return Ref{pkg: t.PkgPath(), name: trimInstantiation(t.Name()), args: nil}
	}

	switch t.Kind() { //nolint:exhaustive // remaining kinds are rendered by reflect.
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Object.Bare()
		}
	case reflect.Map:
		return Ref{pkg: "", name: Map.Name, args: []Ref{FromType(t.Key()), FromType(t.Elem())}}
	case reflect.Slice:
		return Ref{pkg: "", name: Slice.Name, args: []Ref{FromType(t.Elem())}}
	}

	return Ref{pkg: "", name: t.String(), args: nil}
}

func trimInstantiation(name string) string {
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		return name[:idx]
	}

	return name
}
