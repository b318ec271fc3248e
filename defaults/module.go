package defaults

import (
	"github.com/0xalexb/hjarta-apidoc/typeref"

	"go.uber.org/fx"
)

// Module provides *Defaults and the typeref.Resolver used to build default rules.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module() fx.Option {
	return fx.Module("defaults",
		fx.Provide(New),
		fx.Provide(
			fx.Annotate(
				typeref.NewResolver,
				fx.As(new(typeref.Resolver)),
			),
		),
	)
}
