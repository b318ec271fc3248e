// Package web declares the web framework types the documentation pipeline knows about.
//
// Handlers may accept these types as parameters; they are infrastructure,
// not API input, and never appear in the generated documentation.
// ResponseEntity and Entity are envelopes whose payload is documented in
// their place.
package web

import (
	"context"
	"net/url"
	"reflect"

	"github.com/0xalexb/hjarta-apidoc/typeref"
)

// Request is the protocol-independent inbound request.
type Request interface {
	Context() context.Context
	Attribute(name string) (any, bool)
}

// HTTPRequest is an HTTP request as seen by a handler.
type HTTPRequest interface {
	Request
	Method() string
	URL() *url.URL
	Header() Headers
}

// Response is the protocol-independent outbound response.
type Response interface {
	Write(p []byte) (int, error)
}

// HTTPResponse is an HTTP response writer as seen by a handler.
type HTTPResponse interface {
	Response
	Header() Headers
	WriteHeader(statusCode int)
}

// ServerContext exposes server-wide state to handlers.
type ServerContext interface {
	Attribute(name string) (any, bool)
	ContextPath() string
}

// Headers is a multi-valued header map.
type Headers map[string][]string

// FieldError is a single binding failure.
type FieldError struct {
	Field   string
	Message string
}

// BindingResult collects the errors produced while binding request data.
type BindingResult struct {
	Errors []FieldError
}

// URIBuilder assembles URIs relative to the current request.
type URIBuilder struct {
	Base  url.URL
	Path  []string
	Query url.Values
}

// TypeToken carries a runtime type as a handler argument.
type TypeToken struct {
	Type reflect.Type
}

// Ignore marks a parameter or operation as excluded from documentation.
type Ignore struct{}

// Entity is a message with headers and a body.
type Entity[T any] struct {
	Headers Headers
	Body    T
}

// ResponseEntity is an Entity with an HTTP status code.
type ResponseEntity[T any] struct {
	Entity[T]

	StatusCode int
}

//nolint:gochecknoglobals // derived from the declarations above, never reassigned.
var (
	RequestType       = typeref.FromType(reflect.TypeFor[Request]())
	HTTPRequestType   = typeref.FromType(reflect.TypeFor[HTTPRequest]())
	ResponseType      = typeref.FromType(reflect.TypeFor[Response]())
	HTTPResponseType  = typeref.FromType(reflect.TypeFor[HTTPResponse]())
	ServerContextType = typeref.FromType(reflect.TypeFor[ServerContext]())
	HeadersType       = typeref.FromType(reflect.TypeFor[Headers]())
	BindingResultType = typeref.FromType(reflect.TypeFor[BindingResult]())
	URIBuilderType    = typeref.FromType(reflect.TypeFor[URIBuilder]())
	TypeTokenType     = typeref.FromType(reflect.TypeFor[TypeToken]())
	IgnoreType        = typeref.FromType(reflect.TypeFor[Ignore]())

	// EntityRaw is the generic declaration of Entity.
	EntityRaw = typeref.RawOf(reflect.TypeFor[Entity[any]](), 1)
	// ResponseEntityRaw is the generic declaration of ResponseEntity.
	ResponseEntityRaw = typeref.RawOf(reflect.TypeFor[ResponseEntity[any]](), 1)
)
