package llm

// BuildClassificationJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. It constrains the model output and is used locally to
// validate before anything is persisted.
func BuildClassificationJSONSchema(allowedTypes []string) map[string]any {
	props := map[string]any{
		"product_type": map[string]any{"type": "string", "minLength": 1},
		"confidence":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"reasoning":    map[string]any{"type": "string"},
	}
	if len(allowedTypes) > 0 {
		props["product_type"] = map[string]any{
			"type": "string",
			"enum": allowedTypes,
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"product_type"},
	}
}

// BuildAbbreviationJSONSchema constrains the abbreviation output: short,
// upper-case latin/cyrillic code with digits and dashes.
func BuildAbbreviationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"abbreviation": map[string]any{
				"type":      "string",
				"minLength": 2,
				"maxLength": 32,
			},
		},
		"required": []string{"abbreviation"},
	}
}
