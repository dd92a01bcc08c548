// Package jsonschema validates JSON documents against JSON Schema
// definitions.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks a JSON document against a JSON Schema. It returns nil
// when the document conforms, a *jsonschema.ValidationError when it does
// not, and a wrapped parse error when the schema or the document is not
// parseable.
func Validate(document, schema string) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var decoded any
	if err := json.Unmarshal([]byte(document), &decoded); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return compiled.Validate(decoded)
}

// Failures flattens a Validate error into one message per violated
// constraint. Non-validation errors yield their single message.
func Failures(err error) []string {
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	return flatten(validationErr)
}

func flatten(err *jsonschema.ValidationError) []string {
	var messages []string
	if err.Message != "" {
		messages = append(messages, fmt.Sprintf("at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		messages = append(messages, flatten(cause)...)
	}
	return messages
}
