// Package config loads request-suite definitions from YAML files for the
// run command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	http "github.com/louisgoodnews/webutils/internal/http"
)

// Suite is the top-level request-suite configuration.
type Suite struct {
	BaseURL  string            `yaml:"baseUrl,omitempty"`
	Headers  map[string]string `yaml:"headers,omitempty"`
	Requests []Request         `yaml:"requests"`
}

// Request is one request definition inside a suite.
type Request struct {
	Name     string            `yaml:"name"`
	Method   string            `yaml:"method"`
	URL      string            `yaml:"url,omitempty"`
	Endpoint string            `yaml:"endpoint,omitempty"`
	Headers  map[string]string `yaml:"headers,omitempty"`
	Body     map[string]any    `yaml:"body,omitempty"`
	Extract  map[string]string `yaml:"extract,omitempty"`
	Schema   string            `yaml:"schema,omitempty"`
}

// Load reads and parses a suite file, validating it before returning.
func Load(path string) (*Suite, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("suite file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading suite file: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates a suite definition.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("error parsing suite file: %w", err)
	}

	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// Validate checks the suite for problems that would only surface midway
// through a run: unnamed requests, unknown methods, unresolvable URLs and
// bodies on verbs that cannot carry one.
func (s *Suite) Validate() error {
	if len(s.Requests) == 0 {
		return fmt.Errorf("suite defines no requests")
	}

	for i, req := range s.Requests {
		if req.Name == "" {
			return fmt.Errorf("request %d: missing name", i)
		}

		method, err := http.ParseMethod(req.Method)
		if err != nil {
			return fmt.Errorf("request %q: %w", req.Name, err)
		}
		if method == http.MethodHead {
			return fmt.Errorf("request %q: HEAD requests are not supported in suites", req.Name)
		}

		if req.URL == "" && (s.BaseURL == "" || req.Endpoint == "") {
			return fmt.Errorf("request %q: needs either url or baseUrl plus endpoint", req.Name)
		}

		if len(req.Body) > 0 {
			switch method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return fmt.Errorf("request %q: %s requests cannot carry a body", req.Name, method)
			}
		}
	}

	return nil
}

// ResolveURL produces the final URL for a request: an explicit url wins,
// otherwise the suite base is joined with the endpoint.
func (r Request) ResolveURL(baseURL string) string {
	if r.URL != "" {
		return r.URL
	}
	return http.NewURLBuilder(baseURL).WithEndpoint(r.Endpoint)
}
