package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Service issues one-shot HTTP exchanges and packages each result as a
// Response. Every verb call blocks until the exchange completes or fails,
// owns its transport session exclusively, and either returns a fully
// populated Response or fails — there is no partial result, no retry, no
// timeout of its own and no internal logging.
//
// Service holds no mutable state, so concurrent verb calls from multiple
// goroutines are safe.
type Service struct {
	transport Transport
}

// ServiceOption is a function that configures a Service.
type ServiceOption func(*Service)

// WithTransport replaces the default net/http-backed transport.
func WithTransport(transport Transport) ServiceOption {
	return func(s *Service) {
		s.transport = transport
	}
}

// NewService creates a Service with the given options.
func NewService(options ...ServiceOption) *Service {
	service := &Service{transport: NewNetTransport()}
	for _, option := range options {
		option(service)
	}
	return service
}

// Get issues a GET request. GET carries no body.
func (s *Service) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodGet, url, nil, headers)
}

// Post issues a POST request with an optional JSON-encoded data mapping.
func (s *Service) Post(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodPost, url, data, headers)
}

// Put issues a PUT request with an optional JSON-encoded data mapping.
func (s *Service) Put(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodPut, url, data, headers)
}

// Delete issues a DELETE request with an optional JSON-encoded data mapping.
func (s *Service) Delete(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodDelete, url, data, headers)
}

// Patch issues a PATCH request with an optional JSON-encoded data mapping.
func (s *Service) Patch(ctx context.Context, url string, data map[string]any, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodPatch, url, data, headers)
}

// Options issues an OPTIONS request. OPTIONS carries headers only.
func (s *Service) Options(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return s.do(ctx, MethodOptions, url, nil, headers)
}

// Trace issues a TRACE request. TRACE carries neither body nor headers.
func (s *Service) Trace(ctx context.Context, url string) (*Response, error) {
	return s.do(ctx, MethodTrace, url, nil, nil)
}

// do runs the shared per-verb protocol: record method, URL, request
// headers and start time; open a session scoped to this call; issue the
// exchange; fail before any body read on a non-2xx status; decode the body
// according to the declared content type; record the end time and build.
func (s *Service) do(ctx context.Context, method Method, url string, data map[string]any, headers map[string]string) (*Response, error) {
	builder := NewResponseBuilder().
		WithMethod(method).
		WithURL(url).
		WithHeaders(headersView(headers)).
		WithStart(time.Now())

	body, headers, err := encodeBody(data, headers)
	if err != nil {
		return nil, err
	}

	session := s.transport.NewSession()
	defer session.Close()

	exchange, err := session.Do(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}
	defer exchange.Close()

	if exchange.Status() < 200 || exchange.Status() >= 300 {
		// The exchange is abandoned without reading the body; failed
		// calls never produce a Response, partial or otherwise.
		return nil, &StatusError{Status: exchange.Status(), Reason: exchange.Reason()}
	}

	builder.WithStatus(exchange.Status()).
		WithMessage(exchange.Reason()).
		WithType(exchange.ContentType())

	decoded, err := decodeBody(exchange)
	if err != nil {
		return nil, err
	}
	builder.WithBody(decoded)
	builder.WithEnd(time.Now())

	return builder.Build()
}

// encodeBody marshals a data mapping into a JSON request body, defaulting
// Content-Type to application/json unless the caller set one. A nil data
// mapping means no body.
func encodeBody(data map[string]any, headers map[string]string) (io.Reader, map[string]string, error) {
	if data == nil {
		return nil, headers, nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, nil, err
	}

	merged := make(map[string]string, len(headers)+1)
	for key, value := range headers {
		merged[key] = value
	}
	if _, ok := merged["Content-Type"]; !ok {
		merged["Content-Type"] = "application/json"
	}

	return bytes.NewReader(encoded), merged, nil
}

// decodeBody picks the decoding strategy from the declared content type:
// JSON documents decode into the generic value mapping, octet-stream and
// image payloads stay raw bytes, everything else — XML included — is read
// as plain text.
func decodeBody(exchange Exchange) (any, error) {
	contentType := exchange.ContentType()
	switch {
	case contentType == "application/json":
		return exchange.JSON()
	case contentType == "application/xml":
		return exchange.Text()
	case contentType == "application/octet-stream", strings.HasPrefix(contentType, "image/"):
		return exchange.Bytes()
	default:
		return exchange.Text()
	}
}

// headersView widens the request headers into the generic mapping the
// response record stores. A nil headers argument yields an empty mapping.
func headersView(headers map[string]string) map[string]any {
	view := make(map[string]any, len(headers))
	for key, value := range headers {
		view[key] = value
	}
	return view
}
