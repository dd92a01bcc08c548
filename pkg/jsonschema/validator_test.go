package jsonschema

import (
	"testing"
)

const userSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "integer"},
		"name": {"type": "string"}
	},
	"required": ["id", "name"]
}`

func TestValidate_Conforming(t *testing.T) {
	if err := Validate(`{"id": 1, "name": "louis"}`, userSchema); err != nil {
		t.Errorf("Expected document to conform, got %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing required field", `{"id": 1}`},
		{"wrong type", `{"id": "one", "name": "louis"}`},
		{"not an object", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.document, userSchema)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if len(Failures(err)) == 0 {
				t.Error("Expected at least one failure message")
			}
		})
	}
}

func TestValidate_ParseErrors(t *testing.T) {
	if err := Validate(`not json`, userSchema); err == nil {
		t.Error("Expected error for malformed document")
	}
	if err := Validate(`{}`, `{"type": 42}`); err == nil {
		t.Error("Expected error for malformed schema")
	}
}

func TestFailures_Nil(t *testing.T) {
	if Failures(nil) != nil {
		t.Error("Expected nil failures for nil error")
	}
}
