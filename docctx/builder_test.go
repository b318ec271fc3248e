package docctx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/0xalexb/hjarta-apidoc/defaults"
	"github.com/0xalexb/hjarta-apidoc/docctx"
	"github.com/0xalexb/hjarta-apidoc/rules"
	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
	"github.com/0xalexb/hjarta-apidoc/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(messages []service.ResponseMessage) []int {
	out := make([]int, 0, len(messages))
	for _, msg := range messages {
		out = append(out, msg.Code())
	}

	return out
}

func newBuilder() *docctx.Builder {
	return docctx.NewBuilder(defaults.New(), typeref.NewResolver(), nil)
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, 10, ctx.IgnorableParameterTypes().Len())
	assert.Len(t, ctx.ExcludeAnnotations(), 1)
	assert.Equal(t, 6, ctx.Rules().Len())
	assert.Len(t, ctx.Responses(), len(service.HTTPMethods()))
	assert.Equal(t, []int{200, 404, 403, 401}, codes(ctx.ResponseMessages(service.MethodGet)))
}

func TestBuilder_GlobalResponses(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().
		GlobalResponses(service.MethodGet,
			service.NewResponseMessage(http.StatusNotFound, service.WithMessage("No such pet")),
			service.NewResponseMessage(http.StatusInternalServerError),
		).
		Build()
	require.NoError(t, err)

	messages := ctx.ResponseMessages(service.MethodGet)

	assert.Equal(t, []int{200, 404, 403, 401, 500}, codes(messages))
	assert.Equal(t, "No such pet", messages[1].Message())
	assert.Equal(t, "Internal Server Error", messages[4].Message())
	assert.Equal(t, []int{204, 403, 401}, codes(ctx.ResponseMessages(service.MethodDelete)))
}

func TestBuilder_WithoutDefaultResponses(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().
		UseDefaultResponses(false).
		GlobalResponses(service.MethodPost, service.NewResponseMessage(http.StatusAccepted)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []int{202}, codes(ctx.ResponseMessages(service.MethodPost)))
	assert.Empty(t, ctx.ResponseMessages(service.MethodGet))
	assert.Len(t, ctx.Responses(), 1)
}

func TestBuilder_IgnoredTypesAndAnnotations(t *testing.T) {
	t.Parallel()

	session := typeref.MustParse("app.Session")
	internal := typeref.MustParse("app.Internal")

	ctx, err := newBuilder().
		IgnoreParameterTypes(session, web.HeadersType).
		ExcludeAnnotations(internal, web.IgnoreType).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 11, ctx.IgnorableParameterTypes().Len())
	assert.True(t, ctx.IsIgnoredParameter(session))
	assert.True(t, ctx.IsIgnoredParameter(web.BindingResultType))
	assert.False(t, ctx.IsIgnoredParameter(typeref.MustParse("app.Pet")))

	excluded := ctx.ExcludeAnnotations()
	require.Len(t, excluded, 2)
	assert.True(t, excluded[0].Equal(web.IgnoreType))
	assert.True(t, excluded[1].Equal(internal))

	assert.True(t, ctx.IsExcluded(typeref.MustParse("app.Deprecated"), internal))
	assert.False(t, ctx.IsExcluded(typeref.MustParse("app.Deprecated")))
	assert.False(t, ctx.IsExcluded())
}

func TestBuilder_IgnoredGenericMatchesErasure(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().IgnoreParameterTypes(typeref.MustParse("app.Principal")).Build()
	require.NoError(t, err)

	assert.True(t, ctx.IsIgnoredParameter(typeref.MustParse("app.Principal[app.User]")))
}

func TestBuilder_UserRulesFollowDefaults(t *testing.T) {
	t.Parallel()

	money := rules.NewRule(typeref.MustParse("app.Money"), typeref.String.Bare())
	shadowed := rules.NewRule(typeref.MustParse("map[string,any]"), typeref.MustParse("app.Document"))

	ctx, err := newBuilder().AlternateTypeRules(money, shadowed).Build()
	require.NoError(t, err)

	assert.Equal(t, 8, ctx.Rules().Len())
	assert.Equal(t, "string", ctx.ResolveAlternate(typeref.MustParse("app.Money")).String())
	assert.Equal(t, "any", ctx.ResolveAlternate(typeref.MustParse("map[string,any]")).String(),
		"default rules take precedence")
}

func TestBuilder_Sorting(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().Build()
	require.NoError(t, err)

	ops := []service.Operation{
		{Nickname: "updatePet", Position: 1},
		{Nickname: "addPet", Position: 1},
		{Nickname: "listPets", Position: 0},
	}
	ctx.SortOperations(ops)
	assert.Equal(t, "listPets", ops[0].Nickname)
	assert.Equal(t, "addPet", ops[1].Nickname)

	descriptions := []service.APIDescription{{Path: "/pets"}, {Path: "/owners"}}
	ctx.SortAPIDescriptions(descriptions)
	assert.Equal(t, "/owners", descriptions[0].Path)

	listings := []service.APIListingReference{{Path: "/b", Position: 0}, {Path: "/a", Position: 0}, {Path: "/0", Position: 1}}
	ctx.SortListingReferences(listings)
	assert.Equal(t, "/a", listings[0].Path)
	assert.Equal(t, "/0", listings[2].Path)
}

type brokenResolver struct{}

var errResolve = errors.New("resolver unavailable")

func (brokenResolver) Resolve(typeref.Raw, ...typeref.Ref) (typeref.Ref, error) {
	return typeref.Ref{}, errResolve
}

func TestBuilder_ResolverError(t *testing.T) {
	t.Parallel()

	ctx, err := docctx.NewBuilder(defaults.New(), brokenResolver{}, nil).Build()

	require.ErrorIs(t, err, errResolve)
	assert.Nil(t, ctx)
}

func TestBuilder_LogsSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := docctx.NewBuilder(defaults.New(), typeref.NewResolver(), logger).Build()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "documentation context built")
	assert.Contains(t, buf.String(), "rules=6")
}

func TestContext_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx, err := newBuilder().Build()
	require.NoError(t, err)

	responses := ctx.Responses()
	responses[service.MethodGet] = nil

	messages := ctx.ResponseMessages(service.MethodGet)
	messages[0] = service.NewResponseMessage(http.StatusTeapot)

	excluded := ctx.ExcludeAnnotations()
	excluded[0] = typeref.String.Bare()

	assert.Equal(t, []int{200, 404, 403, 401}, codes(ctx.ResponseMessages(service.MethodGet)))
	assert.True(t, ctx.ExcludeAnnotations()[0].Equal(web.IgnoreType))
}
