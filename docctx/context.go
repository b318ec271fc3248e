package docctx

import (
	"log/slog"
	"slices"

	"github.com/0xalexb/hjarta-apidoc/defaults"
	"github.com/0xalexb/hjarta-apidoc/ordering"
	"github.com/0xalexb/hjarta-apidoc/rules"
	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
)

// Context is the effective documentation configuration. It is immutable.
type Context struct {
	ignored                     typeref.Set
	excluded                    []typeref.Ref
	responses                   map[service.HTTPMethod][]service.ResponseMessage
	rules                       rules.Set
	operationOrdering           ordering.Comparator[service.Operation]
	apiDescriptionOrdering      ordering.Comparator[service.APIDescription]
	apiListingReferenceOrdering ordering.Comparator[service.APIListingReference]
}

// NewContext builds a Context from the defaults and optional settings.
// It is the constructor registered by Module.
func NewContext(
	defs *defaults.Defaults,
	resolver typeref.Resolver,
	settings *Settings,
	logger *slog.Logger,
) (*Context, error) {
	builder := NewBuilder(defs, resolver, logger)

	err := builder.ApplySettings(settings)
	if err != nil {
		return nil, err
	}

	return builder.Build()
}

// IgnorableParameterTypes returns the types never documented as parameters.
func (c *Context) IgnorableParameterTypes() typeref.Set {
	return c.ignored
}

// IsIgnoredParameter reports whether a parameter of type ref is left out.
// Generic types are matched on their erasure as well.
func (c *Context) IsIgnoredParameter(ref typeref.Ref) bool {
	return c.ignored.Contains(ref) || c.ignored.Contains(ref.Erasure())
}

// ExcludeAnnotations returns the marker types that exclude a parameter or operation.
func (c *Context) ExcludeAnnotations() []typeref.Ref {
	return slices.Clone(c.excluded)
}

// IsExcluded reports whether any of annotations is an exclude marker.
func (c *Context) IsExcluded(annotations ...typeref.Ref) bool {
	for _, annotation := range annotations {
		if slices.ContainsFunc(c.excluded, annotation.Equal) {
			return true
		}
	}

	return false
}

// ResponseMessages returns the responses documented on every operation of method.
func (c *Context) ResponseMessages(method service.HTTPMethod) []service.ResponseMessage {
	return slices.Clone(c.responses[method])
}

// Responses returns a copy of the full response table.
func (c *Context) Responses() map[service.HTTPMethod][]service.ResponseMessage {
	out := make(map[service.HTTPMethod][]service.ResponseMessage, len(c.responses))
	for method, messages := range c.responses {
		out[method] = slices.Clone(messages)
	}

	return out
}

// Rules returns the alternate type rules in precedence order.
func (c *Context) Rules() rules.Set {
	return c.rules
}

// ResolveAlternate applies the first matching rule to ref.
func (c *Context) ResolveAlternate(ref typeref.Ref) typeref.Ref {
	return c.rules.Apply(ref)
}

// SortOperations sorts ops by position, then nickname.
func (c *Context) SortOperations(ops []service.Operation) {
	ordering.Sort(ops, c.operationOrdering)
}

// SortAPIDescriptions sorts descriptions by path.
func (c *Context) SortAPIDescriptions(descriptions []service.APIDescription) {
	ordering.Sort(descriptions, c.apiDescriptionOrdering)
}

// SortListingReferences sorts refs by position, then path.
func (c *Context) SortListingReferences(refs []service.APIListingReference) {
	ordering.Sort(refs, c.apiListingReferenceOrdering)
}
