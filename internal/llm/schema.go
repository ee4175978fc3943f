package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPropertyJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the extraction record. Nothing is required, since models legitimately
// return subsets, but present fields must carry the right shape so that a
// model hallucinating structure is rejected and the fallback advances.
func BuildPropertyJSONSchema() map[string]any {
	str := map[string]any{"type": "string"}
	integer := map[string]any{"type": "integer"}
	number := map[string]any{"type": "number"}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"property_type":  str,
			"property_name":  str,
			"address":        str,
			"prefecture":     str,
			"city":           str,
			"land_rights":    str,
			"current_status": str,
			"handover_date":  str,
			"build_year":     integer,
			"structure":      str,
			"total_floors":   integer,
			"floor_number":   integer,
			"room_layout":    str,
			"orientation":    str,
			"price":          number,
			"management_fee": integer,
			"repair_fee":     integer,
			"exclusive_area": number,
			"balcony_area":   number,
			"land_area":      number,
			"building_area":  number,
			"parking":        str,
			"pet_policy":     str,
			"corner_room":    map[string]any{"type": "boolean"},
			"stations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name":            map[string]any{"type": "string", "minLength": 1},
						"lines":           map[string]any{"type": "array", "items": str},
						"walking_minutes": integer,
					},
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema compiles the schema map and validates doc.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(sb)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return compiled.Validate(v)
}
