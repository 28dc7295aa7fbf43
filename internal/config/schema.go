package config

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON is the JSON Schema a config file must satisfy before decoding.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "uabench configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "count":   {"type": "integer", "minimum": 0},
    "verbose": {"type": "boolean"},
    "parsers": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "uniqueItems": true
    },
    "regexes": {"type": "string"},
    "corpus":  {"type": "string"},
    "format":  {"type": "string", "enum": ["text", "json", "yaml", "junit"]},
    "noColor": {"type": "boolean"}
  }
}`

var configSchema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// checkSchema validates a decoded document against the config schema.
//
// doc may come from YAML, so it is normalized through encoding/json first.
func checkSchema(doc interface{}) error {
	if doc == nil {
		doc = map[string]interface{}{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}

	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}

	if err := configSchema.Validate(normalized); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
