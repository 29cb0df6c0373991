package questiongen

import "github.com/abhisek/lexio/internal/llm"

// nullable wraps a schema definition so the value may also be JSON null.
// The LLM returns one flat record per question with every field of both
// formats present; null marks the fields the declared format doesn't use.
func nullable(def map[string]any) map[string]any {
	return map[string]any{
		"anyOf": []any{
			def,
			map[string]any{"type": "null"},
		},
	}
}

// QuestionSetSchema defines the JSON schema for question generation
// responses. Every field is required; format-conditional presence is
// expressed with null and enforced after parsing by ValidateQuestion,
// since a structural schema cannot state the cross-field contract.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A set of reading comprehension questions grounded in passage paragraphs",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"format": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "short"},
							"description": "How the learner answers: pick an option or write a short answer",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"inference", "main_idea", "detail_with_evidence",
								"vocab_in_context", "sequence", "why/how",
							},
							"description": "What the question probes",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     3,
							"description": "Difficulty from 1 (easy) to 3 (hard)",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, citing the evidence",
						},
						"evidenceParagraphs": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer", "minimum": 0},
							"description": "0-based indices of the paragraphs the answer is grounded in",
						},
						"options": nullable(map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for mcq format; null for short format",
						}),
						"correctOptionIndex": nullable(map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option for mcq format; null for short format",
						}),
						"modelAnswer": nullable(map[string]any{
							"type":        "string",
							"description": "Reference answer for short format; null for mcq format",
						}),
						"rubric": nullable(map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-5 marking criteria for short format; null for mcq format",
						}),
					},
					"required": []any{
						"format", "type", "difficulty", "prompt", "explanation",
						"evidenceParagraphs", "options", "correctOptionIndex",
						"modelAnswer", "rubric",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
