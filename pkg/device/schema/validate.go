package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// observationSchema describes the observation payload remote probes
// may push over HTTP. Structural checks only: the store applies its
// own drop rules on top of this.
const observationSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"type": {"type": "string", "enum": ["wifi", "ble"]},
		"mac": {"type": "string", "minLength": 1},
		"name": {"type": ["string", "null"]},
		"ssid": {"type": ["string", "null"]},
		"signal_dbm": {"type": ["integer", "null"], "minimum": -120, "maximum": 0}
	},
	"required": ["type", "mac"],
	"additionalProperties": false
}`

// Validator validates observation payloads against the embedded JSON
// Schema. The schema is compiled once at construction.
type Validator struct {
	compiled *jsonschema.Schema
}

// NewValidator compiles the observation schema. Failure here is a
// programming error and should abort startup.
func NewValidator() (*Validator, error) {
	var schemaMap any
	if err := json.Unmarshal([]byte(observationSchema), &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("observation.json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("observation.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	return &Validator{compiled: compiled}, nil
}

// Validate returns nil if the payload is a well-formed observation, or
// an error describing the validation failures.
func (v *Validator) Validate(payload map[string]any) error {
	return v.compiled.Validate(payload)
}
