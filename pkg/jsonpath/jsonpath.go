// Package jsonpath extracts values from JSON documents using a practical
// subset of JSONPath, translated onto gjson paths.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at a JSONPath expression as a string. JSON
// null extracts as "null"; a missing path is an error.
func Extract(document, path string) (string, error) {
	if document == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(document, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// ExtractAll resolves a set of named JSONPath expressions against one
// document. All extractions are attempted; the error aggregates every
// failed name.
func ExtractAll(document string, paths map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(paths))
	var failures []string

	for name, path := range paths {
		value, err := Extract(document, path)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		values[name] = value
	}

	if len(failures) > 0 {
		return values, fmt.Errorf("extraction errors: %s", strings.Join(failures, "; "))
	}
	return values, nil
}

// toGjsonPath rewrites a JSONPath expression ($.users[0].name) into the
// dotted form gjson understands (users.0.name). Bracket notation with
// single or double quotes is accepted; filters and slices are not.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	replacer := strings.NewReplacer(
		"['", ".", "']", "",
		`["`, ".", `"]`, "",
		"[", ".", "]", "",
	)
	return strings.TrimPrefix(replacer.Replace(path), ".")
}
