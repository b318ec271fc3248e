package apidoc

import (
	"github.com/0xalexb/hjarta-apidoc/config"
	filefetcher "github.com/0xalexb/hjarta-apidoc/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-apidoc/config/parser/yaml"
	"github.com/0xalexb/hjarta-apidoc/docctx"

	"go.uber.org/fx"
)

// settingsModule loads *docctx.Settings from the "docs" section of a YAML file.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func settingsModule(path string, strict bool) fx.Option {
	var parserOpts []yamlparser.Option
	if strict {
		parserOpts = append(parserOpts, yamlparser.WithStrict())
	}

	return fx.Module("settings",
		fx.Provide(
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser(parserOpts...) },
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(new(docctx.Settings), docctx.SettingsPath)),
	)
}
