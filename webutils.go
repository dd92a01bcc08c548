// Package webutils is the public surface of the module: it re-exports the
// HTTP convenience layer and offers package-level verbs bound to a shared
// default Service for one-liner use.
//
// Basic usage:
//
//	resp, err := webutils.Get(ctx, "https://api.example.com/users/1", nil)
//	if err != nil {
//		return err
//	}
//	fmt.Println(resp.Status(), resp.Body())
package webutils

import (
	"context"

	http "github.com/louisgoodnews/webutils/internal/http"
)

// Core types, re-exported so callers never import internal packages.
type (
	Authorization      = http.Authorization
	HeaderBuilder      = http.HeaderBuilder
	URLBuilder         = http.URLBuilder
	Method             = http.Method
	Response           = http.Response
	ResponseBuilder    = http.ResponseBuilder
	ResponseFactory    = http.ResponseFactory
	Service            = http.Service
	ServiceOption      = http.ServiceOption
	Transport          = http.Transport
	Session            = http.Session
	Exchange           = http.Exchange
	StatusError        = http.StatusError
	MissingFieldError  = http.MissingFieldError
	InvalidSchemeError = http.InvalidSchemeError
)

// Method constants.
const (
	MethodGet     = http.MethodGet
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodPatch   = http.MethodPatch
	MethodOptions = http.MethodOptions
	MethodTrace   = http.MethodTrace
)

// Authorization scheme names.
const (
	SchemeBasic  = http.SchemeBasic
	SchemeBearer = http.SchemeBearer
	SchemeCustom = http.SchemeCustom
	SchemeDigest = http.SchemeDigest
	SchemeOAuth  = http.SchemeOAuth
	SchemeOAuth2 = http.SchemeOAuth2
)

// Constructors.
var (
	NewAuthorization   = http.NewAuthorization
	NewHeaderBuilder   = http.NewHeaderBuilder
	NewURLBuilder      = http.NewURLBuilder
	NewResponseBuilder = http.NewResponseBuilder
	NewService         = http.NewService
	WithTransport      = http.WithTransport
	ParseMethod        = http.ParseMethod
)

// defaultService backs the package-level verbs. It is safe for concurrent
// use since every call opens its own session.
var defaultService = http.NewService()

// Get performs a GET request with the default Service.
func Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return defaultService.Get(ctx, url, headers)
}

// Post performs a POST request with the default Service.
func Post(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return defaultService.Post(ctx, url, data, headers)
}

// Put performs a PUT request with the default Service.
func Put(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return defaultService.Put(ctx, url, data, headers)
}

// Delete performs a DELETE request with the default Service.
func Delete(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return defaultService.Delete(ctx, url, data, headers)
}

// Patch performs a PATCH request with the default Service.
func Patch(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return defaultService.Patch(ctx, url, data, headers)
}

// Options performs an OPTIONS request with the default Service.
func Options(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return defaultService.Options(ctx, url, headers)
}

// Trace performs a TRACE request with the default Service.
func Trace(ctx context.Context, url string) (*Response, error) {
	return defaultService.Trace(ctx, url)
}
