// Package typeref models the type references used while documenting an API.
//
// A Ref names a type by package path and name and carries its type arguments,
// so "map[string,any]" and "example.com/web.ResponseEntity[?]" are both refs.
// The Resolver turns raw declarations into refs, validating the number of
// type parameters. The wildcard "?" is only meaningful inside alternate type
// rules, where it matches any type and binds it for substitution.
package typeref
