package defaults

import (
	"net/http"
	"slices"

	"github.com/0xalexb/hjarta-apidoc/ordering"
	"github.com/0xalexb/hjarta-apidoc/rules"
	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
	"github.com/0xalexb/hjarta-apidoc/web"
)

// Defaults holds the baseline configuration of the documentation pipeline.
// It is built once by New and never modified afterwards.
type Defaults struct {
	ignored                     typeref.Set
	responses                   map[service.HTTPMethod][]service.ResponseMessage
	annotations                 []typeref.Ref
	operationOrdering           ordering.Comparator[service.Operation]
	apiDescriptionOrdering      ordering.Comparator[service.APIDescription]
	apiListingReferenceOrdering ordering.Comparator[service.APIListingReference]
}

// New creates the Defaults.
func New() *Defaults {
	return &Defaults{
		ignored:     ignorableTypes(),
		responses:   responseMessages(),
		annotations: []typeref.Ref{web.IgnoreType},
		operationOrdering: ordering.By(
			ordering.Key(func(o service.Operation) int { return o.Position }),
			ordering.Key(func(o service.Operation) string { return o.Nickname }),
		),
		apiDescriptionOrdering: ordering.Key(func(d service.APIDescription) string { return d.Path }),
		apiListingReferenceOrdering: ordering.By(
			ordering.Key(func(r service.APIListingReference) int { return r.Position }),
			ordering.Key(func(r service.APIListingReference) string { return r.Path }),
		),
	}
}

// IgnorableParameterTypes returns the framework types never documented as operation parameters.
func (d *Defaults) IgnorableParameterTypes() typeref.Set {
	return d.ignored
}

// ResponseMessages returns the responses assumed for every operation, per HTTP method.
// The returned map is a copy.
func (d *Defaults) ResponseMessages() map[service.HTTPMethod][]service.ResponseMessage {
	out := make(map[service.HTTPMethod][]service.ResponseMessage, len(d.responses))
	for method, messages := range d.responses {
		out[method] = slices.Clone(messages)
	}

	return out
}

// ResponseMessagesFor returns the default responses of a single method.
func (d *Defaults) ResponseMessagesFor(method service.HTTPMethod) []service.ResponseMessage {
	return slices.Clone(d.responses[method])
}

// ExcludeAnnotations returns the marker types that exclude a parameter or operation.
func (d *Defaults) ExcludeAnnotations() []typeref.Ref {
	return slices.Clone(d.annotations)
}

// OperationOrdering orders operations by position, then by nickname.
func (d *Defaults) OperationOrdering() ordering.Comparator[service.Operation] {
	return d.operationOrdering
}

// APIDescriptionOrdering orders API descriptions by path.
func (d *Defaults) APIDescriptionOrdering() ordering.Comparator[service.APIDescription] {
	return d.apiDescriptionOrdering
}

// APIListingReferenceOrdering orders listing references by position, then by path.
func (d *Defaults) APIListingReferenceOrdering() ordering.Comparator[service.APIListingReference] {
	return d.apiListingReferenceOrdering
}

// Rules returns the default alternate type rules in precedence order.
// Map rules come first so maps collapse before any enclosing envelope is unwrapped.
// Resolver errors are returned as is.
func (d *Defaults) Rules(resolver typeref.Resolver) (rules.Set, error) {
	object, err := resolver.Resolve(typeref.Object)
	if err != nil {
		return rules.Set{}, err //nolint:wrapcheck // resolver failures pass through unchanged.
	}

	str, err := resolver.Resolve(typeref.String)
	if err != nil {
		return rules.Set{}, err //nolint:wrapcheck
	}

	wildcard, err := resolver.Resolve(typeref.Wildcard)
	if err != nil {
		return rules.Set{}, err //nolint:wrapcheck
	}

	sources := []struct {
		raw    typeref.Raw
		params []typeref.Ref
		target typeref.Ref
	}{
		{typeref.Map, nil, object},
		{typeref.Map, []typeref.Ref{str, object}, object},
		{typeref.Map, []typeref.Ref{object, object}, object},
		{typeref.Map, []typeref.Ref{str, str}, object},
		{web.ResponseEntityRaw, []typeref.Ref{wildcard}, wildcard},
		{web.EntityRaw, []typeref.Ref{wildcard}, wildcard},
	}

	out := make([]rules.AlternateTypeRule, 0, len(sources))

	for _, src := range sources {
		source, err := resolver.Resolve(src.raw, src.params...)
		if err != nil {
			return rules.Set{}, err //nolint:wrapcheck
		}

		out = append(out, rules.NewRule(source, src.target))
	}

	return rules.NewSet(out...), nil
}

func ignorableTypes() typeref.Set {
	return typeref.NewSet(
		web.RequestType,
		web.TypeTokenType,
		web.HeadersType,
		web.ResponseType,
		web.HTTPRequestType,
		web.HTTPResponseType,
		web.HeadersType,
		web.BindingResultType,
		web.ServerContextType,
		web.URIBuilderType,
		web.IgnoreType,
	)
}

func responseMessages() map[service.HTTPMethod][]service.ResponseMessage {
	denied := []int{http.StatusForbidden, http.StatusUnauthorized}
	lookup := append([]int{http.StatusNotFound}, denied...)

	codes := map[service.HTTPMethod][]int{
		service.MethodGet:     append([]int{http.StatusOK}, lookup...),
		service.MethodPut:     append([]int{http.StatusCreated}, lookup...),
		service.MethodPost:    append([]int{http.StatusCreated}, lookup...),
		service.MethodDelete:  append([]int{http.StatusNoContent}, denied...),
		service.MethodPatch:   append([]int{http.StatusNoContent}, denied...),
		service.MethodTrace:   append([]int{http.StatusNoContent}, denied...),
		service.MethodOptions: append([]int{http.StatusNoContent}, denied...),
		service.MethodHead:    append([]int{http.StatusNoContent}, denied...),
	}

	out := make(map[service.HTTPMethod][]service.ResponseMessage, len(codes))

	for method, methodCodes := range codes {
		messages := make([]service.ResponseMessage, 0, len(methodCodes))
		for _, code := range methodCodes {
			messages = append(messages, service.NewResponseMessage(code))
		}

		out[method] = messages
	}

	return out
}
