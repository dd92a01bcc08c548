package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSuite = `
baseUrl: https://api.example.com
headers:
  Accept: application/json
requests:
  - name: getUser
    method: GET
    endpoint: users/1
    extract:
      id: $.id
  - name: createUser
    method: POST
    endpoint: users
    body:
      name: louis
    schema: |
      {"type": "object", "required": ["id"]}
`

func TestParse_ValidSuite(t *testing.T) {
	suite, err := Parse([]byte(validSuite))
	if err != nil {
		t.Fatalf("Error parsing suite: %v", err)
	}

	if suite.BaseURL != "https://api.example.com" {
		t.Errorf("Unexpected baseUrl %s", suite.BaseURL)
	}
	if len(suite.Requests) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(suite.Requests))
	}

	first := suite.Requests[0]
	if first.Name != "getUser" || first.Method != "GET" {
		t.Errorf("Unexpected first request %+v", first)
	}
	if first.Extract["id"] != "$.id" {
		t.Errorf("Expected extract expression, got %v", first.Extract)
	}

	second := suite.Requests[1]
	if second.Body["name"] != "louis" {
		t.Errorf("Expected body mapping, got %v", second.Body)
	}
	if !strings.Contains(second.Schema, `"required"`) {
		t.Errorf("Expected inline schema, got %q", second.Schema)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("requests: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(path, []byte(validSuite), 0o644); err != nil {
		t.Fatalf("Error writing suite file: %v", err)
	}

	suite, err := Load(path)
	if err != nil {
		t.Fatalf("Error loading suite: %v", err)
	}
	if len(suite.Requests) != 2 {
		t.Errorf("Expected 2 requests, got %d", len(suite.Requests))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no requests",
			yaml:    "baseUrl: https://x",
			wantErr: "no requests",
		},
		{
			name: "missing name",
			yaml: `
requests:
  - method: GET
    url: https://x/y
`,
			wantErr: "missing name",
		},
		{
			name: "unknown method",
			yaml: `
requests:
  - name: bad
    method: CONNECT
    url: https://x/y
`,
			wantErr: "unknown HTTP method",
		},
		{
			name: "head request",
			yaml: `
requests:
  - name: bad
    method: HEAD
    url: https://x/y
`,
			wantErr: "HEAD requests are not supported",
		},
		{
			name: "no url and no endpoint",
			yaml: `
requests:
  - name: bad
    method: GET
`,
			wantErr: "needs either url",
		},
		{
			name: "body on GET",
			yaml: `
requests:
  - name: bad
    method: GET
    url: https://x/y
    body:
      a: 1
`,
			wantErr: "cannot carry a body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRequest_ResolveURL(t *testing.T) {
	withEndpoint := Request{Endpoint: "users/1"}
	if got := withEndpoint.ResolveURL("https://api.example.com"); got != "https://api.example.com/users/1" {
		t.Errorf("Unexpected resolved URL %s", got)
	}

	explicit := Request{URL: "https://other.example.com/z", Endpoint: "ignored"}
	if got := explicit.ResolveURL("https://api.example.com"); got != "https://other.example.com/z" {
		t.Errorf("Expected explicit URL to win, got %s", got)
	}
}
