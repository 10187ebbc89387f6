package catalog

// packSchema defines the JSON schema every embedded scenario pack must satisfy.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schemaVersion": map[string]any{
			"type":    "string",
			"pattern": `^v\d+\.\d+\.\d+$`,
		},
		"scenarios": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "minLength": 1},
					"title":         map[string]any{"type": "string", "minLength": 1},
					"category":      map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"apprentice", "journeyman", "master"},
					},
					"realWorldCase": map[string]any{"type": "string"},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"situation": map[string]any{"type": "string", "minLength": 1},
								"question":  map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"id":        map[string]any{"type": "string", "minLength": 1},
											"text":      map[string]any{"type": "string", "minLength": 1},
											"correct":   map[string]any{"type": "boolean"},
											"feedback":  map[string]any{"type": "string", "minLength": 1},
											"reference": map[string]any{"type": "string"},
										},
										"required":             []any{"id", "text", "correct", "feedback"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"id", "situation", "question", "options"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "category", "difficulty", "steps"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"schemaVersion", "scenarios"},
	"additionalProperties": false,
}
