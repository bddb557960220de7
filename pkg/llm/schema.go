package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the structured output expected from a generation call:
// a JSON object with required properties (a skill's produces), nullable
// optional properties (optional_produces), and optionally a closed string
// enum (the planner's choice set).
type Schema struct {
	Required []string
	Optional []string

	// Enum constrains a single property to a closed choice set. Used by the
	// planner: property name → allowed values.
	Enum map[string][]string
}

// ObjectSchema builds the schema for a skill's produces ∪ optional_produces.
// Output-mapping keys are the top-level property names; dotted produces paths
// surface as their literal dotted name, matching how executors key outputs.
func ObjectSchema(required, optional []string) *Schema {
	return &Schema{Required: required, Optional: optional}
}

// EnumSchema builds a single-property schema whose value must be one of the
// given choices.
func EnumSchema(property string, choices []string) *Schema {
	return &Schema{
		Required: []string{property},
		Enum:     map[string][]string{property: choices},
	}
}

// MarshalJSON renders the schema as JSON Schema (draft 2020-12).
func (s *Schema) MarshalJSON() ([]byte, error) {
	properties := map[string]any{}
	for _, name := range s.Required {
		properties[name] = s.propertySchema(name, false)
	}
	for _, name := range s.Optional {
		if _, exists := properties[name]; exists {
			continue
		}
		properties[name] = s.propertySchema(name, true)
	}

	required := append([]string(nil), s.Required...)
	sort.Strings(required)

	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return json.Marshal(doc)
}

// propertySchema permits any JSON value; optional properties additionally
// permit null so the model can decline them explicitly.
func (s *Schema) propertySchema(name string, nullable bool) map[string]any {
	if choices, ok := s.Enum[name]; ok {
		return map[string]any{"type": "string", "enum": choices}
	}
	if nullable {
		return map[string]any{} // any value, including null
	}
	return map[string]any{"not": map[string]any{"type": "null"}}
}

// Compile compiles the schema for validation.
func (s *Schema) Compile() (*jsonschema.Schema, error) {
	raw, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding generated schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("weft://response-schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("weft://response-schema.json")
}
