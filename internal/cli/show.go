package cli

import (
	"fmt"
	"io"

	apidoc "github.com/0xalexb/hjarta-apidoc"
	"github.com/0xalexb/hjarta-apidoc/docctx"
	"github.com/0xalexb/hjarta-apidoc/service"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type summary struct {
	IgnoredParameterTypes []string          `yaml:"ignoredParameterTypes"`
	ExcludeAnnotations    []string          `yaml:"excludeAnnotations"`
	Responses             []methodResponses `yaml:"responses"`
	AlternateTypeRules    []string          `yaml:"alternateTypeRules"`
}

type methodResponses struct {
	Method   string         `yaml:"method"`
	Messages []responseView `yaml:"messages"`
}

type responseView struct {
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
	Model   string `yaml:"model,omitempty"`
}

func showCmd() *cobra.Command {
	var (
		settings string
		strict   bool
		method   string
		logLevel string
	)

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the effective documentation defaults as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var methods []service.HTTPMethod

			if method != "" {
				parsed, err := service.ParseHTTPMethod(method)
				if err != nil {
					return err //nolint:wrapcheck
				}

				methods = []service.HTTPMethod{parsed}
			} else {
				methods = service.HTTPMethods()
			}

			opts := []apidoc.Option{
				apidoc.WithLogLevel(logLevel),
				apidoc.WithLogOutput(cmd.ErrOrStderr()),
			}
			if settings != "" {
				opts = append(opts, apidoc.WithSettingsFile(settings, strict))
			}

			docs, err := loadContext(opts...)
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), docs, methods)
		},
	}

	c.Flags().StringVarP(&settings, "settings", "s", "", "YAML file with a docs section (optional)")
	c.Flags().BoolVar(&strict, "strict", true, "reject unknown keys in the docs section")
	c.Flags().StringVarP(&method, "method", "m", "", "only print responses for this HTTP method")
	c.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return c
}

func loadContext(opts ...apidoc.Option) (*docctx.Context, error) {
	var docs *docctx.Context

	app := apidoc.NewApp(append(opts, apidoc.WithModules(fx.Populate(&docs)))...)

	err := app.Start()
	if err != nil {
		return nil, err //nolint:wrapcheck // already prefixed by App.Start.
	}

	err = app.Stop()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return docs, nil
}

func buildSummary(docs *docctx.Context, methods []service.HTTPMethod) summary {
	out := summary{}

	for _, ref := range docs.IgnorableParameterTypes().Refs() {
		out.IgnoredParameterTypes = append(out.IgnoredParameterTypes, ref.String())
	}

	for _, ref := range docs.ExcludeAnnotations() {
		out.ExcludeAnnotations = append(out.ExcludeAnnotations, ref.String())
	}

	for _, method := range methods {
		messages := docs.ResponseMessages(method)
		if len(messages) == 0 {
			continue
		}

		entry := methodResponses{Method: string(method)}

		for _, msg := range messages {
			view := responseView{Code: msg.Code(), Message: msg.Message()}
			if model, ok := msg.ResponseModel(); ok {
				view.Model = model.String()
			}

			entry.Messages = append(entry.Messages, view)
		}

		out.Responses = append(out.Responses, entry)
	}

	for _, rule := range docs.Rules().Rules() {
		out.AlternateTypeRules = append(out.AlternateTypeRules, rule.String())
	}

	return out
}

func writeSummary(w io.Writer, docs *docctx.Context, methods []service.HTTPMethod) error {
	data, err := yaml.Marshal(buildSummary(docs, methods))
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return nil
}
