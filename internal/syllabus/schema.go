package syllabus

import "github.com/nsharma/studyblocks/internal/llm"

// DocumentSchema is the structured output contract for full-syllabus
// extraction: assignments, tests, and the weekly class schedule.
var DocumentSchema = &llm.Schema{
	Name:        "syllabus-document",
	Description: "Assignments, tests, and the weekly class schedule extracted from course material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assignments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Descriptive assignment title using the syllabus wording",
						},
						"due_date": map[string]any{
							"type":        "string",
							"description": "Due date as YYYY-MM-DD",
						},
						"due_time": map[string]any{
							"type":        "string",
							"description": "Due time as HH:MM, or \"N/A\" when not clearly specified",
						},
						"weight": map[string]any{
							"type":        "number",
							"description": "Percentage of the final grade; 0 when not stated",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"description": "Always 0 at this stage; rated separately per assignment",
						},
					},
					"required":             []any{"title", "due_date", "due_time", "weight", "difficulty"},
					"additionalProperties": false,
				},
			},
			"tests": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type": "string",
						},
						"date": map[string]any{
							"type":        "string",
							"description": "Test date as YYYY-MM-DD",
						},
						"time": map[string]any{
							"type":        "string",
							"description": "Test time as HH:MM, or \"N/A\"",
						},
						"weight": map[string]any{
							"type":        "number",
							"description": "Percentage of the final grade",
						},
					},
					"required":             []any{"title", "date", "time", "weight"},
					"additionalProperties": false,
				},
			},
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Course code followed by the course name where possible",
						},
						"days": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Weekday names, e.g. Monday, Wednesday",
						},
						"time": map[string]any{
							"type":        "string",
							"description": "Class time range like 10:30–11:30, or \"N/A\"",
						},
						"location": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"name", "days", "time", "location"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"assignments", "tests", "schedule"},
		"additionalProperties": false,
	},
}

// AssessmentSchema is the structured output contract for rating a
// single assignment's difficulty from its handout text.
var AssessmentSchema = &llm.Schema{
	Name:        "assignment-assessment",
	Description: "Title, due date, and estimated difficulty for a single assignment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"due_date": map[string]any{
				"type":        "string",
				"description": "Due date as YYYY-MM-DD",
			},
			"due_time": map[string]any{
				"type":        "string",
				"description": "Due time as HH:MM, or \"N/A\"",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Estimated difficulty: 1 = very easy, 10 = very difficult",
			},
		},
		"required":             []any{"title", "due_date", "due_time", "difficulty"},
		"additionalProperties": false,
	},
}
