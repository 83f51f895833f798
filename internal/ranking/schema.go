package ranking

import "github.com/adapticode/adapticode/internal/llm"

// RankingSchema defines the JSON schema for question ranking responses.
var RankingSchema = &llm.Schema{
	Name:        "question-ranking",
	Description: "The chosen next question and a learner-facing explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"selected_question": map[string]any{
				"type":        "string",
				"description": "The ID of the chosen question from the candidate list",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Short encouraging explanation addressed to the student, at most three sentences",
			},
		},
		"required":             []any{"selected_question", "explanation"},
		"additionalProperties": false,
	},
}
