package http

import (
	"fmt"
	"time"
)

// timestampLayout is the fixed rendering for start/end in Dict: seconds
// precision, no timezone, no fractional seconds. Consumers diff serialized
// responses, so the format is a compatibility surface.
const timestampLayout = "2006-01-02 15:04:05"

// Response is an immutable record of one completed HTTP exchange: timing,
// status, headers, decoded body and convenience predicates. A Response is
// constructed exactly once by ResponseFactory from a fully populated
// builder and never mutated afterwards.
type Response struct {
	body        map[string]any
	duration    float64
	end         time.Time
	headers     map[string]any
	message     string
	method      Method
	start       time.Time
	status      int
	contentType string
	url         string
}

// Body returns the decoded body mapping; it is empty when the exchange
// carried no usable body. The returned mapping is a copy, so mutating it
// leaves the record untouched.
func (r *Response) Body() map[string]any { return copyMapping(r.body) }

// Duration returns the wall-clock duration of the exchange in seconds,
// derived once at construction from End minus Start.
func (r *Response) Duration() float64 { return r.duration }

// End returns the timestamp captured after the body was decoded.
func (r *Response) End() time.Time { return r.end }

// Headers returns a copy of the headers recorded for the exchange.
func (r *Response) Headers() map[string]any { return copyMapping(r.headers) }

// Message returns the human-readable reason phrase, e.g. "OK".
func (r *Response) Message() string { return r.message }

// Method returns the verb the exchange was issued with.
func (r *Response) Method() Method { return r.method }

// Start returns the timestamp captured before the request was issued.
func (r *Response) Start() time.Time { return r.start }

// Status returns the numeric status code exactly as the transport
// reported it, unvalidated beyond the Empty and Success predicates.
func (r *Response) Status() int { return r.status }

// Type returns the declared content type of the response body.
func (r *Response) Type() string { return r.contentType }

// URL returns the URL the exchange was issued against.
func (r *Response) URL() string { return r.url }

// Get looks a key up in the body mapping. A missing key is reported
// through the second return value, not as an error.
func (r *Response) Get(key string) (any, bool) {
	value, ok := r.body[key]
	return value, ok
}

// Empty reports whether the exchange ended with 204 No Content.
func (r *Response) Empty() bool { return r.status == 204 }

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool { return r.status >= 200 && r.status < 300 }

// Dict returns the serialized view of the response. Field names, the
// timestamp layout and the method token are fixed; see timestampLayout.
func (r *Response) Dict() map[string]any {
	return map[string]any{
		"body":     copyMapping(r.body),
		"duration": r.duration,
		"end":      r.end.Format(timestampLayout),
		"headers":  copyMapping(r.headers),
		"message":  r.message,
		"method":   r.method.String(),
		"start":    r.start.Format(timestampLayout),
		"status":   r.status,
		"type":     r.contentType,
		"url":      r.url,
	}
}

// copyMapping shields the record's internal maps from callers.
func copyMapping(m map[string]any) map[string]any {
	copied := make(map[string]any, len(m))
	for key, value := range m {
		copied[key] = value
	}
	return copied
}

func (r *Response) String() string {
	return fmt.Sprintf(
		"Response(body=%v, duration=%v, end=%v, headers=%v, message=%v, method=%v, start=%v, status=%v, type=%v, url=%v)",
		r.body, r.duration, r.end.Format(timestampLayout), r.headers, r.message,
		r.method, r.start.Format(timestampLayout), r.status, r.contentType, r.url,
	)
}

// ResponseFactory is the single construction point for Response values.
type ResponseFactory struct{}

// NewResponse assembles an immutable Response. A nil body yields an empty
// mapping. Duration is derived once from end and start; the factory does
// not enforce ordering of the two timestamps.
func (ResponseFactory) NewResponse(
	end time.Time,
	headers map[string]any,
	message string,
	method Method,
	start time.Time,
	status int,
	contentType string,
	url string,
	body map[string]any,
) *Response {
	if body == nil {
		body = map[string]any{}
	}
	return &Response{
		body:        body,
		duration:    end.Sub(start).Seconds(),
		end:         end,
		headers:     headers,
		message:     message,
		method:      method,
		start:       start,
		status:      status,
		contentType: contentType,
		url:         url,
	}
}

// requiredFields is what Build checks before delegating to the factory, in
// the order violations are reported. body is optional and defaults to an
// empty mapping.
var requiredFields = []string{"end", "headers", "message", "method", "start", "status", "type", "url"}

// ResponseBuilder is a staged accumulator of response fields. WithX calls
// may arrive in any order and may repeat — the last write for a field
// wins. Build validates completeness and delegates construction to
// ResponseFactory; it does not consume the builder, so calling it twice
// re-reads the same configuration. A ResponseBuilder must not be mutated
// from multiple goroutines.
type ResponseBuilder struct {
	factory ResponseFactory

	body        map[string]any
	end         time.Time
	headers     map[string]any
	message     string
	method      Method
	start       time.Time
	status      int
	contentType string
	url         string

	set map[string]bool
}

// NewResponseBuilder creates an empty ResponseBuilder.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{set: make(map[string]bool)}
}

// WithBody sets the body of the response. Mapping values are stored as-is;
// anything else is wrapped as {"body": value} so the record's body is
// always a mapping.
func (b *ResponseBuilder) WithBody(value any) *ResponseBuilder {
	if m, ok := value.(map[string]any); ok {
		b.body = m
	} else {
		b.body = map[string]any{"body": value}
	}
	b.set["body"] = true
	return b
}

// WithEnd sets the end timestamp of the response.
func (b *ResponseBuilder) WithEnd(value time.Time) *ResponseBuilder {
	b.end = value
	b.set["end"] = true
	return b
}

// WithHeaders sets the headers of the response.
func (b *ResponseBuilder) WithHeaders(value map[string]any) *ResponseBuilder {
	b.headers = value
	b.set["headers"] = true
	return b
}

// WithMessage sets the reason phrase of the response.
func (b *ResponseBuilder) WithMessage(value string) *ResponseBuilder {
	b.message = value
	b.set["message"] = true
	return b
}

// WithMethod sets the verb of the response.
func (b *ResponseBuilder) WithMethod(value Method) *ResponseBuilder {
	b.method = value
	b.set["method"] = true
	return b
}

// WithStart sets the start timestamp of the response.
func (b *ResponseBuilder) WithStart(value time.Time) *ResponseBuilder {
	b.start = value
	b.set["start"] = true
	return b
}

// WithStatus sets the status code of the response.
func (b *ResponseBuilder) WithStatus(value int) *ResponseBuilder {
	b.status = value
	b.set["status"] = true
	return b
}

// WithType sets the content type of the response.
func (b *ResponseBuilder) WithType(value string) *ResponseBuilder {
	b.contentType = value
	b.set["type"] = true
	return b
}

// WithURL sets the URL of the response.
func (b *ResponseBuilder) WithURL(value string) *ResponseBuilder {
	b.url = value
	b.set["url"] = true
	return b
}

// Build validates that every required field was set and constructs the
// Response through the factory. A missing field fails closed with a
// *MissingFieldError naming it.
func (b *ResponseBuilder) Build() (*Response, error) {
	for _, field := range requiredFields {
		if !b.set[field] {
			return nil, &MissingFieldError{Field: field}
		}
	}
	return b.factory.NewResponse(
		b.end,
		b.headers,
		b.message,
		b.method,
		b.start,
		b.status,
		b.contentType,
		b.url,
		b.body,
	), nil
}
