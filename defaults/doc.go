// Package defaults supplies the baseline configuration of the documentation pipeline:
// parameter types that are never documented, marker types that exclude an
// operation or parameter, the responses assumed for every HTTP method, the
// orderings of operations, API descriptions and listing references, and the
// alternate type rules that collapse maps and unwrap response envelopes.
//
// Construct it once with New (or through Module) and pass it to whatever
// needs it. Accessors return copies or immutable values, so a single
// instance is safe for concurrent use.
package defaults
