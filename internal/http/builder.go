package http

// HeaderBuilder accumulates header pairs into a final mapping. Later Add
// calls for the same key overwrite earlier ones; insertion order is
// irrelevant. Header names and values are not validated — that is the
// caller's responsibility. A HeaderBuilder must not be mutated from
// multiple goroutines.
type HeaderBuilder struct {
	configuration map[string]string
}

// NewHeaderBuilder creates an empty HeaderBuilder.
func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{configuration: make(map[string]string)}
}

// Add inserts or overwrites a header and returns the builder for chaining.
func (b *HeaderBuilder) Add(key, value string) *HeaderBuilder {
	b.configuration[key] = value
	return b
}

// Build returns a snapshot of the accumulated headers. The snapshot does
// not alias the builder's state, so the builder stays usable afterwards.
func (b *HeaderBuilder) Build() map[string]string {
	headers := make(map[string]string, len(b.configuration))
	for key, value := range b.configuration {
		headers[key] = value
	}
	return headers
}

// URLBuilder joins a base URL with path segments. Unlike HeaderBuilder and
// ResponseBuilder it accumulates nothing: WithEndpoint is a pure projection
// of the base and never mutates the builder.
type URLBuilder struct {
	base string
}

// NewURLBuilder creates a URLBuilder over the given base URL. The base is
// not validated as a well-formed URL; malformed results are left for the
// transport to reject.
func NewURLBuilder(base string) *URLBuilder {
	return &URLBuilder{base: base}
}

// WithEndpoint returns base + "/" + segment. Slashes are not deduplicated
// and the segment is not URL-encoded.
func (b *URLBuilder) WithEndpoint(segment string) string {
	return b.base + "/" + segment
}
