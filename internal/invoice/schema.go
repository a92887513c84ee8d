package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Parsed invoices are validated against it before any DB write.
func BuildInvoiceJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title_raw":   map[string]any{"type": "string", "minLength": 1},
			"brand":       map[string]any{"type": "string"},
			"material":    map[string]any{"type": "string", "minLength": 1},
			"color_name":  map[string]any{"type": "string"},
			"diameter_mm": map[string]any{"type": "number", "minimum": 0.0, "maximum": 5.0},
			"quantity":    map[string]any{"type": "integer", "minimum": 1},
			"price":       map[string]any{"type": "number", "minimum": 0.0},
		},
		"required": []string{"title_raw", "quantity"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor":       map[string]any{"type": "string", "minLength": 1},
			"order_number": map[string]any{"type": "string"},
			"order_date":   map[string]any{"type": "string"},
			"total_amount": map[string]any{"type": "number", "minimum": 0.0},
			"currency":     map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"items":        map[string]any{"type": "array", "minItems": 1, "items": item},
		},
		"required": []string{"vendor", "currency", "items"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
