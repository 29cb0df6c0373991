package chunkplan

import "github.com/abhisek/lexio/internal/llm"

// PlanSchema defines the JSON schema for thematic chunking responses:
// the passage split into paragraphs with main-idea labels, plus a
// candidate section plan over those paragraphs. Structural conformance
// is checked by the provider; partition invariants are enforced by
// Validate afterwards.
var PlanSchema = &llm.Schema{
	Name:        "chunked-passage",
	Description: "A passage split into labeled paragraphs grouped into thematic sections",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"paragraphs": map[string]any{
				"type":        "array",
				"description": "The passage paragraphs in order, each with a short main-idea label",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The paragraph text, unchanged from the passage",
						},
						"idea": map[string]any{
							"type":        "string",
							"description": "The paragraph's main idea in 3-6 words",
						},
					},
					"required":             []any{"text", "idea"},
					"additionalProperties": false,
				},
			},
			"sections": map[string]any{
				"type":        "array",
				"description": "Thematic sections covering all paragraphs exactly once, contiguously",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Section identifier (reassigned after validation)",
						},
						"label": map[string]any{
							"type":        "string",
							"description": "The section's theme in 3-6 words",
						},
						"startPara": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "0-based index of the first paragraph in the section",
						},
						"endPara": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "0-based index of the last paragraph in the section (inclusive)",
						},
					},
					"required":             []any{"id", "label", "startPara", "endPara"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"paragraphs", "sections"},
		"additionalProperties": false,
	},
}
