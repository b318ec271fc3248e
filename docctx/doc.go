// Package docctx builds the documentation context: the defaults merged with
// user settings.
//
// Ignored parameter types and exclude annotations extend the defaults.
// Global responses replace a default response with the same status code and
// are appended otherwise; with default responses disabled only the global
// ones remain. User alternate type rules are tried after the default rules.
package docctx
