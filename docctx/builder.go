package docctx

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/0xalexb/hjarta-apidoc/defaults"
	"github.com/0xalexb/hjarta-apidoc/rules"
	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
)

// Builder merges Defaults with user adjustments into a Context.
type Builder struct {
	defaults            *defaults.Defaults
	resolver            typeref.Resolver
	logger              *slog.Logger
	useDefaultResponses bool
	ignored             []typeref.Ref
	excluded            []typeref.Ref
	global              map[service.HTTPMethod][]service.ResponseMessage
	rules               []rules.AlternateTypeRule
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default.
func NewBuilder(defs *defaults.Defaults, resolver typeref.Resolver, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		defaults:            defs,
		resolver:            resolver,
		logger:              logger,
		useDefaultResponses: true,
		ignored:             nil,
		excluded:            nil,
		global:              make(map[service.HTTPMethod][]service.ResponseMessage),
		rules:               nil,
	}
}

// UseDefaultResponses controls whether the default responses are included.
func (b *Builder) UseDefaultResponses(enabled bool) *Builder {
	b.useDefaultResponses = enabled

	return b
}

// IgnoreParameterTypes adds types that are never documented as parameters.
func (b *Builder) IgnoreParameterTypes(refs ...typeref.Ref) *Builder {
	b.ignored = append(b.ignored, refs...)

	return b
}

// ExcludeAnnotations adds marker types that exclude a parameter or operation.
func (b *Builder) ExcludeAnnotations(refs ...typeref.Ref) *Builder {
	b.excluded = append(b.excluded, refs...)

	return b
}

// GlobalResponses adds responses documented on every operation of method.
// A response with the same code as a default replaces it.
func (b *Builder) GlobalResponses(method service.HTTPMethod, messages ...service.ResponseMessage) *Builder {
	b.global[method] = append(b.global[method], messages...)

	return b
}

// AlternateTypeRules adds rules tried after the default ones.
func (b *Builder) AlternateTypeRules(extra ...rules.AlternateTypeRule) *Builder {
	b.rules = append(b.rules, extra...)

	return b
}

// ApplySettings validates settings and records them on the builder.
func (b *Builder) ApplySettings(settings *Settings) error {
	if settings == nil {
		return nil
	}

	err := settings.Validate()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if settings.UseDefaultResponses != nil {
		b.UseDefaultResponses(*settings.UseDefaultResponses)
	}

	for _, name := range settings.IgnoredParameterTypes {
		b.IgnoreParameterTypes(typeref.MustParse(name))
	}

	for _, name := range settings.ExcludeAnnotations {
		b.ExcludeAnnotations(typeref.MustParse(name))
	}

	for name, responses := range settings.GlobalResponses {
		method, _ := service.ParseHTTPMethod(name)

		for _, response := range responses {
			b.GlobalResponses(method, response.message())
		}
	}

	for _, rule := range settings.AlternateTypeRules {
		b.AlternateTypeRules(rules.NewRule(typeref.MustParse(rule.Source), typeref.MustParse(rule.Target)))
	}

	return nil
}

// Build creates the Context.
func (b *Builder) Build() (*Context, error) {
	defaultRules, err := b.defaults.Rules(b.resolver)
	if err != nil {
		return nil, fmt.Errorf("building default rules: %w", err)
	}

	ctx := &Context{
		ignored:                     b.defaults.IgnorableParameterTypes().Union(b.ignored...),
		excluded:                    mergeRefs(b.defaults.ExcludeAnnotations(), b.excluded),
		responses:                   b.responses(),
		rules:                       defaultRules.Append(b.rules...),
		operationOrdering:           b.defaults.OperationOrdering(),
		apiDescriptionOrdering:      b.defaults.APIDescriptionOrdering(),
		apiListingReferenceOrdering: b.defaults.APIListingReferenceOrdering(),
	}

	b.logger.Debug("documentation context built",
		slog.Int("ignored_types", ctx.ignored.Len()),
		slog.Int("exclude_annotations", len(ctx.excluded)),
		slog.Int("rules", ctx.rules.Len()),
		slog.Bool("default_responses", b.useDefaultResponses),
	)

	return ctx, nil
}

func (b *Builder) responses() map[service.HTTPMethod][]service.ResponseMessage {
	out := make(map[service.HTTPMethod][]service.ResponseMessage)

	for _, method := range service.HTTPMethods() {
		var merged []service.ResponseMessage
		if b.useDefaultResponses {
			merged = b.defaults.ResponseMessagesFor(method)
		}

		for _, msg := range b.global[method] {
			idx := slices.IndexFunc(merged, func(existing service.ResponseMessage) bool {
				return existing.Code() == msg.Code()
			})
			if idx >= 0 {
				merged[idx] = msg

				continue
			}

			merged = append(merged, msg)
		}

		if len(merged) > 0 {
			out[method] = merged
		}
	}

	return out
}

func mergeRefs(base, extra []typeref.Ref) []typeref.Ref {
	out := slices.Clone(base)

	for _, ref := range extra {
		if !slices.ContainsFunc(out, ref.Equal) {
			out = append(out, ref)
		}
	}

	return out
}
