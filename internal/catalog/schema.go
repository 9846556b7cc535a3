package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema describes the question catalog document: a non-empty array
// of question records.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer"},
			"question": map[string]any{"type": "string", "minLength": 1},
			"domain":   map[string]any{"type": "string", "minLength": 1},
			"resource": map[string]any{"type": "string"},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"single", "multiple"},
			},
			"answers": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":        map[string]any{"type": "string", "minLength": 1},
						"status":      map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"text", "status"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "question", "domain", "type", "answers"},
		"additionalProperties": false,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog checks raw catalog JSON against the schema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.json", def); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
