package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const instanceSchema = `{
  "type": "object",
  "required": ["id", "name", "url", "allowedTables"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "name": {"type": "string"},
    "description": {"type": ["string", "null"]},
    "url": {"type": "string"},
    "allowedTables": {"type": "array", "items": {"type": "string"}}
  }
}`

var (
	schemaOnce       sync.Once
	compiledInstance *jsonschema.Schema
	compiledList     *jsonschema.Schema
	schemaErr        error
)

func compileSchemas() {
	compile := func(name, src string) (*jsonschema.Schema, error) {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
			return nil, fmt.Errorf("failed to add schema resource: %w", err)
		}
		return compiler.Compile(name)
	}

	compiledInstance, schemaErr = compile("instance.json", instanceSchema)
	if schemaErr != nil {
		return
	}
	compiledList, schemaErr = compile("instances.json",
		`{"type": "array", "items": `+instanceSchema+`}`)
}

// decodeChecked validates body against the named schema and then decodes it
// into out. Any failure is reported as a *DecodeError.
func decodeChecked(body []byte, list bool, what string, out any) error {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return &DecodeError{What: what, Err: schemaErr}
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return &DecodeError{What: what, Err: err}
	}

	schema := compiledInstance
	if list {
		schema = compiledList
	}
	if err := schema.Validate(raw); err != nil {
		return &DecodeError{What: what, Err: describeSchemaError(err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{What: what, Err: err}
	}
	return nil
}

// describeSchemaError flattens a validation error into its leaf causes.
func describeSchemaError(err error) error {
	vErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var msgs []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(vErr)
	return fmt.Errorf("unexpected response shape: %s", strings.Join(msgs, "; "))
}
