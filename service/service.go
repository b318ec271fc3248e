// Package service holds the documentation units the pipeline assembles and orders.
package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/0xalexb/hjarta-apidoc/typeref"
)

// ErrUnknownMethod is returned when a string does not name a supported HTTP method.
var ErrUnknownMethod = errors.New("unknown HTTP method")

// HTTPMethod is an HTTP request method.
type HTTPMethod string

// Supported HTTP methods.
const (
	MethodGet     HTTPMethod = http.MethodGet
	MethodPut     HTTPMethod = http.MethodPut
	MethodPost    HTTPMethod = http.MethodPost
	MethodDelete  HTTPMethod = http.MethodDelete
	MethodPatch   HTTPMethod = http.MethodPatch
	MethodTrace   HTTPMethod = http.MethodTrace
	MethodOptions HTTPMethod = http.MethodOptions
	MethodHead    HTTPMethod = http.MethodHead
)

// HTTPMethods returns the supported methods in declaration order.
func HTTPMethods() []HTTPMethod {
	return []HTTPMethod{
		MethodGet, MethodPut, MethodPost, MethodDelete,
		MethodPatch, MethodTrace, MethodOptions, MethodHead,
	}
}

// ParseHTTPMethod parses a method name case-insensitively.
func ParseHTTPMethod(name string) (HTTPMethod, error) {
	candidate := HTTPMethod(strings.ToUpper(strings.TrimSpace(name)))

	for _, method := range HTTPMethods() {
		if method == candidate {
			return method, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// ResponseMessage documents one possible response of an operation.
type ResponseMessage struct {
	code    int
	message string
	model   *typeref.Ref
}

// ResponseOption configures a ResponseMessage.
type ResponseOption func(*ResponseMessage)

// WithMessage overrides the reason phrase.
func WithMessage(message string) ResponseOption {
	return func(m *ResponseMessage) {
		m.message = message
	}
}

// WithResponseModel sets the type of the response body.
func WithResponseModel(model typeref.Ref) ResponseOption {
	return func(m *ResponseMessage) {
		m.model = &model
	}
}

// NewResponseMessage creates a ResponseMessage for code.
// The message defaults to the standard reason phrase and the model to none.
func NewResponseMessage(code int, opts ...ResponseOption) ResponseMessage {
	msg := ResponseMessage{
		code:    code,
		message: http.StatusText(code),
		model:   nil,
	}

	for _, apply := range opts {
		apply(&msg)
	}

	return msg
}

// Code returns the HTTP status code.
func (m ResponseMessage) Code() int {
	return m.code
}

// Message returns the response description.
func (m ResponseMessage) Message() string {
	return m.message
}

// ResponseModel returns the body type, if one is documented.
func (m ResponseMessage) ResponseModel() (typeref.Ref, bool) {
	if m.model == nil {
		return typeref.Ref{}, false
	}

	return *m.model, true
}

// Operation is one HTTP method on one route.
type Operation struct {
	Method   HTTPMethod
	Nickname string
	Summary  string
	// Position is the declared rank assigned upstream.
	Position int
}

// APIDescription describes one route path and its operations.
type APIDescription struct {
	Path        string
	Description string
	Operations  []Operation
}

// APIListingReference points at a named group of API descriptions.
type APIListingReference struct {
	Path        string
	Description string
	Position    int
}
