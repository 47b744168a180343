package outline

import "github.com/AnuSaha545/ai-study-planner-agent/internal/llm"

func itemList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"maxItems":    MaxItems,
		"items": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": MaxItemLength,
		},
	}
}

// OutlineSchema defines the JSON schema for subject outline generation.
var OutlineSchema = &llm.Schema{
	Name:        "subject-outline",
	Description: "Ordered study concepts and practice tasks for one subject",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": MaxSubjectLength,
			},
			"concepts":       itemList("12-20 core concepts ordered from beginner to advanced"),
			"practice_tasks": itemList("12-20 concrete practice tasks or problem types"),
		},
		"required":             []any{"subject", "concepts", "practice_tasks"},
		"additionalProperties": false,
	},
}
