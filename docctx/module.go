package docctx

import "go.uber.org/fx"

// Module provides *Context. *Settings is optional; without it the defaults apply unchanged.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module() fx.Option {
	return fx.Module("docctx",
		fx.Provide(
			fx.Annotate(
				NewContext,
				fx.ParamTags(``, ``, `optional:"true"`, ``),
			),
		),
	)
}
