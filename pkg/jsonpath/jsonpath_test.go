package jsonpath

import (
	"strings"
	"testing"
)

const document = `{
	"id": 1,
	"name": "louis",
	"tags": ["a", "b"],
	"nested": {"deep": {"value": 42}},
	"users": [{"name": "first"}, {"name": "second"}],
	"nothing": null
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple field", "$.id", "1"},
		{"string field", "$.name", "louis"},
		{"without dollar", "name", "louis"},
		{"array index", "$.tags[1]", "b"},
		{"nested object", "$.nested.deep.value", "42"},
		{"array of objects", "$.users[0].name", "first"},
		{"bracket single quotes", "$['name']", "louis"},
		{"bracket double quotes", `$["name"]`, "louis"},
		{"null value", "$.nothing", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(document, tt.path)
			if err != nil {
				t.Fatalf("Error extracting %s: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtract_RootPath(t *testing.T) {
	got, err := Extract(`{"a":1}`, "$")
	if err != nil {
		t.Fatalf("Error extracting root: %v", err)
	}
	if !strings.Contains(got, `"a"`) {
		t.Errorf("Expected whole document, got %q", got)
	}
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		path     string
	}{
		{"empty document", "", "$.id"},
		{"empty path", document, ""},
		{"missing path", document, "$.absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract(tt.document, tt.path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestExtractAll(t *testing.T) {
	values, err := ExtractAll(document, map[string]string{
		"id":   "$.id",
		"user": "$.users[1].name",
	})
	if err != nil {
		t.Fatalf("Error extracting: %v", err)
	}

	if values["id"] != "1" || values["user"] != "second" {
		t.Errorf("Unexpected values %v", values)
	}
}

func TestExtractAll_AggregatesFailures(t *testing.T) {
	values, err := ExtractAll(document, map[string]string{
		"ok":      "$.id",
		"missing": "$.absent",
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if values["ok"] != "1" {
		t.Errorf("Expected successful extraction to survive, got %v", values)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("Expected failure to name the expression, got %v", err)
	}
}
