package http

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	nethttp "net/http"
	"strconv"
	"strings"
)

// Exchange is the transport's view of one received response. Status,
// reason and content type are available before any body read, so a caller
// can abandon the exchange without touching the body.
type Exchange interface {
	// Status returns the numeric status code.
	Status() int
	// Reason returns the human-readable reason phrase.
	Reason() string
	// ContentType returns the declared media type without parameters, or
	// "application/octet-stream" when the server declared none.
	ContentType() string
	// JSON decodes the body as a JSON document.
	JSON() (any, error)
	// Text reads the body as a string.
	Text() (string, error)
	// Bytes reads the raw body.
	Bytes() ([]byte, error)
	// Close releases the underlying body stream.
	Close() error
}

// Session is a scoped handle on the underlying client. Each verb call owns
// exactly one session for its lifetime and releases it before returning.
type Session interface {
	Do(ctx context.Context, method Method, url string, headers map[string]string, body io.Reader) (Exchange, error)
	Close() error
}

// Transport opens sessions against the underlying HTTP client. It is the
// only capability the service consumes; everything beneath it — TCP, TLS,
// DNS, connection handling — belongs to the client library.
type Transport interface {
	NewSession() Session
}

// NetTransport is the default Transport, backed by net/http. Every session
// gets its own client and connection state, so nothing is shared or reused
// between verb calls. Timeouts, redirects and TLS stay at the library
// defaults; this layer defines none of its own.
type NetTransport struct{}

// NewNetTransport creates the default net/http-backed transport.
func NewNetTransport() *NetTransport {
	return &NetTransport{}
}

// NewSession opens a fresh session with its own connection state.
func (t *NetTransport) NewSession() Session {
	return &netSession{
		client: &nethttp.Client{Transport: &nethttp.Transport{}},
	}
}

type netSession struct {
	client *nethttp.Client
}

func (s *netSession) Do(ctx context.Context, method Method, url string, headers map[string]string, body io.Reader) (Exchange, error) {
	req, err := nethttp.NewRequestWithContext(ctx, method.String(), url, body)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &netExchange{resp: resp}, nil
}

func (s *netSession) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

type netExchange struct {
	resp *nethttp.Response
	raw  []byte
	read bool
}

func (e *netExchange) Status() int {
	return e.resp.StatusCode
}

func (e *netExchange) Reason() string {
	// net/http exposes "200 OK"; strip the numeric prefix back off.
	return strings.TrimPrefix(e.resp.Status, strconv.Itoa(e.resp.StatusCode)+" ")
}

func (e *netExchange) ContentType() string {
	header := e.resp.Header.Get("Content-Type")
	if header == "" {
		return "application/octet-stream"
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mediaType
}

func (e *netExchange) Bytes() ([]byte, error) {
	if e.read {
		return e.raw, nil
	}
	raw, err := io.ReadAll(e.resp.Body)
	if err != nil {
		return nil, err
	}
	e.raw = raw
	e.read = true
	return raw, nil
}

func (e *netExchange) Text() (string, error) {
	raw, err := e.Bytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (e *netExchange) JSON() (any, error) {
	raw, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func (e *netExchange) Close() error {
	return e.resp.Body.Close()
}
