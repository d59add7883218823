package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

// ErrInvalidRequest is returned when a request body is not valid JSON or
// does not match its schema.
type ErrInvalidRequest struct {
	Schema string
	Err    error
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Schema, e.Err)
}

func (e *ErrInvalidRequest) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// decodeBody validates raw against schema and then unmarshals it into v.
func decodeBody(schema *Schema, raw []byte, v any) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidRequest{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidRequest{Schema: schema.Name, Err: err}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &ErrInvalidRequest{Schema: schema.Name, Err: err}
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// DecodeRequest validates raw against RequestSchema and returns the
// normalized request.
func DecodeRequest(raw []byte) (worksheet.Request, error) {
	var req worksheet.Request
	if err := decodeBody(RequestSchema, raw, &req); err != nil {
		return worksheet.Request{}, err
	}
	return req.Normalize(), nil
}
