// Package rules holds the alternate type rules applied while resolving types for documentation.
package rules

import "github.com/0xalexb/hjarta-apidoc/typeref"

// AlternateTypeRule substitutes Target wherever Source appears.
// Wildcards in Source match any type; wildcards in Target are replaced by the
// types matched at the corresponding wildcard positions of Source.
type AlternateTypeRule struct {
	source typeref.Ref
	target typeref.Ref
}

// NewRule creates a rule substituting target for source.
func NewRule(source, target typeref.Ref) AlternateTypeRule {
	return AlternateTypeRule{source: source, target: target}
}

// Source returns the type the rule matches.
func (r AlternateTypeRule) Source() typeref.Ref {
	return r.source
}

// Target returns the type the rule substitutes.
func (r AlternateTypeRule) Target() typeref.Ref {
	return r.target
}

// AppliesTo reports whether the rule matches typ.
func (r AlternateTypeRule) AppliesTo(typ typeref.Ref) bool {
	if r.source.HasWildcards() {
		return wildcardMatch(typ, r.source)
	}

	return r.source.Equal(typ)
}

// Alternate returns the substitute for typ, or typ itself when the rule does not apply.
func (r AlternateTypeRule) Alternate(typ typeref.Ref) typeref.Ref {
	if !r.AppliesTo(typ) {
		return typ
	}

	if !r.target.HasWildcards() {
		return r.target
	}

	captured := collectReplaceables(typ, r.source, nil)
	replaced, _ := replaceWildcards(r.target, captured)

	return replaced
}

// String renders the rule as "source -> target".
func (r AlternateTypeRule) String() string {
	return r.source.String() + " -> " + r.target.String()
}

func wildcardMatch(typ, pattern typeref.Ref) bool {
	if pattern.IsWildcard() {
		return true
	}

	if typ.Pkg() != pattern.Pkg() || typ.Name() != pattern.Name() || typ.NumArgs() != pattern.NumArgs() {
		return false
	}

	typArgs, patternArgs := typ.Args(), pattern.Args()
	for i := range patternArgs {
		if !wildcardMatch(typArgs[i], patternArgs[i]) {
			return false
		}
	}

	return true
}

// collectReplaceables walks typ and pattern in parallel and returns, in
// depth-first order, the parts of typ found at wildcard positions of pattern.
func collectReplaceables(typ, pattern typeref.Ref, acc []typeref.Ref) []typeref.Ref {
	if pattern.IsWildcard() {
		return append(acc, typ)
	}

	typArgs, patternArgs := typ.Args(), pattern.Args()
	for i := range patternArgs {
		acc = collectReplaceables(typArgs[i], patternArgs[i], acc)
	}

	return acc
}

// replaceWildcards substitutes the wildcards of target, in depth-first order,
// with the captured types. Wildcards left without a capture stay in place.
func replaceWildcards(target typeref.Ref, captured []typeref.Ref) (typeref.Ref, []typeref.Ref) {
	if target.IsWildcard() {
		if len(captured) == 0 {
			return target, captured
		}

		return captured[0], captured[1:]
	}

	if target.NumArgs() == 0 {
		return target, captured
	}

	args := target.Args()
	for i := range args {
		args[i], captured = replaceWildcards(args[i], captured)
	}

	raw := typeref.Raw{Pkg: target.Pkg(), Name: target.Name(), Arity: len(args)}

	replaced, err := typeref.NewResolver().Resolve(raw, args...)
	if err != nil {
		return target, captured
	}

	return replaced, captured
}
