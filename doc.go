// Package apidoc wires the documentation defaults into an Fx application.
//
// NewApp always registers the defaults and the documentation context; a
// settings file added with WithSettingsFile adjusts the context. Consumers
// obtain the *docctx.Context through their own Fx modules.
package apidoc
