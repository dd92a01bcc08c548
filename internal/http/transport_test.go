package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestNetSession_Do(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected method GET, got %s", r.Method)
		}
		if r.Header.Get("X-Test-Header") != "test-value" {
			t.Errorf("Expected header X-Test-Header: test-value, got %s", r.Header.Get("X-Test-Header"))
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte(`{"message":"success"}`))
	}))
	defer server.Close()

	session := NewNetTransport().NewSession()
	defer session.Close()

	exchange, err := session.Do(context.Background(), MethodGet, server.URL, map[string]string{"X-Test-Header": "test-value"}, nil)
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	defer exchange.Close()

	if exchange.Status() != 200 {
		t.Errorf("Expected status 200, got %d", exchange.Status())
	}
	if exchange.Reason() != "OK" {
		t.Errorf("Expected reason OK, got %s", exchange.Reason())
	}

	// Parameters are stripped from the declared media type.
	if exchange.ContentType() != "application/json" {
		t.Errorf("Expected content type application/json, got %s", exchange.ContentType())
	}

	text, err := exchange.Text()
	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}
	if text != `{"message":"success"}` {
		t.Errorf("Unexpected body %s", text)
	}
}

func TestNetExchange_Reason(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	session := NewNetTransport().NewSession()
	defer session.Close()

	exchange, err := session.Do(context.Background(), MethodGet, server.URL, nil, nil)
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	defer exchange.Close()

	if exchange.Status() != 404 {
		t.Errorf("Expected status 404, got %d", exchange.Status())
	}
	if exchange.Reason() != "Not Found" {
		t.Errorf("Expected reason Not Found, got %q", exchange.Reason())
	}
}

func TestNetExchange_ContentTypeDefault(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		// Suppress content-type sniffing so the header stays unset.
		w.Header()["Content-Type"] = nil
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte{0x01, 0x02})
	}))
	defer server.Close()

	session := NewNetTransport().NewSession()
	defer session.Close()

	exchange, err := session.Do(context.Background(), MethodGet, server.URL, nil, nil)
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	defer exchange.Close()

	if exchange.ContentType() != "application/octet-stream" {
		t.Errorf("Expected octet-stream default, got %s", exchange.ContentType())
	}
}

func TestNetExchange_BodyIsCached(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	session := NewNetTransport().NewSession()
	defer session.Close()

	exchange, err := session.Do(context.Background(), MethodGet, server.URL, nil, nil)
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	defer exchange.Close()

	first, err := exchange.Bytes()
	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}
	second, err := exchange.Bytes()
	if err != nil {
		t.Fatalf("Error reading body second time: %v", err)
	}

	if string(first) != "payload" || string(second) != "payload" {
		t.Errorf("Expected cached payload, got %q and %q", first, second)
	}
}

func TestNetTransport_SessionsAreIndependent(t *testing.T) {
	transport := NewNetTransport()

	first := transport.NewSession()
	second := transport.NewSession()
	defer first.Close()
	defer second.Close()

	if first == second {
		t.Error("Expected each call to own a fresh session")
	}
}
