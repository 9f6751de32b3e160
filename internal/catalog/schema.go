package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// rateSheetSchema constrains tie-up JSON files. Validation failures fail
// the whole catalog load: a malformed sheet must never half-load.
func rateSheetSchema(itemTypes []string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"hospital_name", "categories"},
		"properties": map[string]any{
			"hospital_name": map[string]any{"type": "string", "minLength": 1},
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"category_name", "items"},
					"properties": map[string]any{
						"category_name": map[string]any{"type": "string", "minLength": 1},
						"items": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":                 "object",
								"additionalProperties": false,
								"required":             []string{"item_name", "rate", "type"},
								"properties": map[string]any{
									"item_name": map[string]any{"type": "string", "minLength": 1},
									"rate":      map[string]any{"type": "number", "minimum": 0},
									"type":      map[string]any{"type": "string", "enum": itemTypes},
								},
							},
						},
					},
				},
			},
		},
	}
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
