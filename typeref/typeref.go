package typeref

import (
	"strings"
)

// Ref is a canonical reference to a possibly parameterized type.
// A Ref is immutable: its arguments are copied on construction and on access.
type Ref struct {
	pkg  string
	name string
	args []Ref
}

// Raw describes a type declaration before parameterization.
// Arity is the number of type parameters the declaration takes.
type Raw struct {
	Pkg   string
	Name  string
	Arity int
}

//nolint:gochecknoglobals // well-known raw declarations.
var (
	// Object is the universal type, written "any".
	Object = Raw{Pkg: "", Name: "any", Arity: 0}
	// String is the builtin string type.
	String = Raw{Pkg: "", Name: "string", Arity: 0}
	// Map is the generic map declaration with key and value parameters.
	Map = Raw{Pkg: "", Name: "map", Arity: 2}
	// Slice is the generic slice declaration with an element parameter.
	Slice = Raw{Pkg: "", Name: "slice", Arity: 1}
	// Wildcard stands for "any type" in rule patterns and binds the matched type.
	Wildcard = Raw{Pkg: "", Name: "?", Arity: 0}
)

// Bare returns the unparameterized reference for the declaration.
func (r Raw) Bare() Ref {
	return Ref{pkg: r.Pkg, name: r.Name, args: nil}
}

// Pkg returns the package path of the referenced type. Builtins have an empty path.
func (r Ref) Pkg() string {
	return r.pkg
}

// Name returns the unqualified type name.
func (r Ref) Name() string {
	return r.name
}

// Args returns a copy of the type arguments.
func (r Ref) Args() []Ref {
	if len(r.args) == 0 {
		return nil
	}

	out := make([]Ref, len(r.args))
	copy(out, r.args)

	return out
}

// NumArgs returns the number of type arguments.
func (r Ref) NumArgs() int {
	return len(r.args)
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.name == "" && r.pkg == "" && len(r.args) == 0
}

// Erasure returns r without its type arguments.
func (r Ref) Erasure() Ref {
	return Ref{pkg: r.pkg, name: r.name, args: nil}
}

// IsWildcard reports whether r is the wildcard placeholder.
func (r Ref) IsWildcard() bool {
	return r.pkg == Wildcard.Pkg && r.name == Wildcard.Name
}

// HasWildcards reports whether r or any of its arguments is a wildcard.
func (r Ref) HasWildcards() bool {
	if r.IsWildcard() {
		return true
	}

	for _, arg := range r.args {
		if arg.HasWildcards() {
			return true
		}
	}

	return false
}

// Equal reports whether r and other reference the same type with the same arguments.
func (r Ref) Equal(other Ref) bool {
	if r.pkg != other.pkg || r.name != other.name || len(r.args) != len(other.args) {
		return false
	}

	for i := range r.args {
		if !r.args[i].Equal(other.args[i]) {
			return false
		}
	}

	return true
}

// String renders r as "pkg.Name[arg1,arg2]". Builtins are rendered without a package.
func (r Ref) String() string {
	var builder strings.Builder

	r.write(&builder)

	return builder.String()
}

func (r Ref) write(builder *strings.Builder) {
	if r.pkg != "" {
		builder.WriteString(r.pkg)
		builder.WriteByte('.')
	}

	builder.WriteString(r.name)

	if len(r.args) == 0 {
		return
	}

	builder.WriteByte('[')

	for i, arg := range r.args {
		if i > 0 {
			builder.WriteByte(',')
		}

		arg.write(builder)
	}

	builder.WriteByte(']')
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
