package api

// Schema is a named JSON schema for a request body.
type Schema struct {
	// Name identifies this schema in the compile cache, e.g. "worksheet-request".
	Name string

	Description string

	// Definition is the JSON Schema object.
	Definition map[string]any
}

// maxOperand bounds client-supplied operands so a product still fits an int.
const maxOperand = 1_000_000

var problemDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"a":        map[string]any{"type": "integer", "minimum": 0, "maximum": maxOperand},
		"b":        map[string]any{"type": "integer", "minimum": 0, "maximum": maxOperand},
		"operator": map[string]any{"type": "string", "enum": []any{"+", "-", "×", "÷"}},
		"display":  map[string]any{"type": "string", "maxLength": 64},
	},
	"additionalProperties": false,
}

// RequestSchema validates POST /api/worksheets and /api/worksheets/pdf.
var RequestSchema = &Schema{
	Name:        "worksheet-request",
	Description: "The choices that select and personalise one worksheet",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type":        "string",
				"description": "pre, k, 1 or 2. Unknown grades use the generic tables.",
			},
			"subject": map[string]any{
				"type": "string",
				"enum": []any{"math"},
			},
			"operation": map[string]any{
				"type":        "string",
				"description": "add, subtract, multiply, divide, numbers, alphabets, shapes or colors",
			},
			"difficulty": map[string]any{
				"type":      "string",
				"maxLength": 32,
			},
			"layout": map[string]any{
				"type": "string",
				"enum": []any{"worksheet_only", "score_box", "drawing_area"},
			},
			"coloring_item": map[string]any{
				"type":      "string",
				"maxLength": 64,
			},
			"student_name": map[string]any{
				"type":      "string",
				"maxLength": 64,
			},
			"count": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     200,
				"description": "0 picks the page-driven default",
			},
			"seed": map[string]any{
				"type":      "string",
				"maxLength": 128,
			},
		},
		"required":             []any{"grade", "operation"},
		"additionalProperties": false,
	},
}

// ComposeSchema validates POST /api/worksheets/compose.
var ComposeSchema = &Schema{
	Name:        "worksheet-compose",
	Description: "A caller-supplied problem set plus layout choices",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type":     "array",
				"items":    problemDefinition,
				"maxItems": 500,
			},
			"grade":     map[string]any{"type": "string"},
			"operation": map[string]any{"type": "string"},
			"personalization": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"difficulty":    map[string]any{"type": "string", "maxLength": 32},
					"layout":        map[string]any{"type": "string", "enum": []any{"worksheet_only", "score_box", "drawing_area"}},
					"coloring_item": map[string]any{"type": "string", "maxLength": 64},
					"student_name":  map[string]any{"type": "string", "maxLength": 64},
				},
				"additionalProperties": false,
			},
		},
		"required":             []any{"problems"},
		"additionalProperties": false,
	},
}

// ScoreSchema validates POST /api/worksheets/score.
var ScoreSchema = &Schema{
	Name:        "worksheet-score",
	Description: "A problem set and the learner's answers, in order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type":     "array",
				"items":    problemDefinition,
				"maxItems": 500,
			},
			"answers": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "maxLength": 64},
				"maxItems": 500,
			},
		},
		"required":             []any{"problems", "answers"},
		"additionalProperties": false,
	},
}
