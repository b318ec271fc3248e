package apidoc_test

import (
	"fmt"

	apidoc "github.com/0xalexb/hjarta-apidoc"
	"github.com/0xalexb/hjarta-apidoc/docctx"
	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
	"github.com/0xalexb/hjarta-apidoc/web"

	"go.uber.org/fx"
)

// PetScanner stands in for a component that inspects handlers and needs the
// effective documentation context.
type PetScanner struct {
	Docs *docctx.Context
}

// Parameters returns the parameter types that would appear in the docs.
func (s *PetScanner) Parameters(types ...typeref.Ref) []string {
	var out []string

	for _, ref := range types {
		if s.Docs.IsIgnoredParameter(ref) {
			continue
		}

		out = append(out, s.Docs.ResolveAlternate(ref).String())
	}

	return out
}

// Example_appWithSettings loads a settings file and injects the resulting
// documentation context into an application component.
func Example_appWithSettings() {
	var scanner *PetScanner

	app := apidoc.NewApp(
		apidoc.WithLogLevel("error"),
		apidoc.WithSettingsFile("testdata/apidoc.yaml", true),
		apidoc.WithModules(
			fx.Provide(func(docs *docctx.Context) *PetScanner { return &PetScanner{Docs: docs} }),
			fx.Populate(&scanner),
		),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	pet := typeref.MustParse("example.com/petstore.Pet")
	entity, _ := typeref.NewResolver().Resolve(web.ResponseEntityRaw, pet)

	fmt.Println(scanner.Parameters(
		typeref.MustParse("example.com/petstore.Session"),
		web.HeadersType,
		typeref.MustParse("example.com/petstore.Money"),
		typeref.MustParse("map[string,string]"),
		entity,
	))

	for _, msg := range scanner.Docs.ResponseMessages(service.MethodGet) {
		fmt.Println(msg.Code(), msg.Message())
	}
	// Output:
	// [string any example.com/petstore.Pet]
	// 200 OK
	// 404 Not Found
	// 403 Forbidden
	// 401 Unauthorized
	// 500 Internal Server Error
}
