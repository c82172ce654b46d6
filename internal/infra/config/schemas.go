package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"reactor.de/timehandler/internal/domain"
)

//go:embed schemas/v1/timehandler.schema.json
var configSchemaJSON []byte

const configSchemaURL = "schema://timehandler"

var configSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
	if err != nil {
		panic("failed to decode embedded config schema: " + err.Error())
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaURL, doc); err != nil {
		panic("failed to register embedded config schema: " + err.Error())
	}

	configSchema, err = compiler.Compile(configSchemaURL)
	if err != nil {
		panic("failed to compile embedded config schema: " + err.Error())
	}
}

func validateSchema(data []byte) error {
	// Convert YAML to JSON for schema validation
	var yamlData interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if yamlData == nil {
		// Empty or comment-only document.
		yamlData = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(yamlData)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to decode converted JSON: %w", err)
	}

	if err := configSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w:\n%v", domain.ErrValidation, err)
	}

	return nil
}
