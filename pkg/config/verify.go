package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	providers, err := schemaEnum(&schema, "TranslateConfig", "provider")
	if err != nil {
		return err
	}
	if len(providers) > 0 && !slices.Contains(providers, any(cfg.Translate.Provider)) {
		return fmt.Errorf("translate.provider %q is not one of %v", cfg.Translate.Provider, providers)
	}

	return nil
}

// schemaEnum returns allowed values of a property defined in the schema definitions
func schemaEnum(schema *jsonschema.Schema, def, prop string) ([]any, error) {
	d, ok := schema.Definitions[def]
	if !ok {
		return nil, fmt.Errorf("schema has no %s definition", def)
	}
	if d.Properties == nil {
		return nil, fmt.Errorf("schema definition %s has no properties", def)
	}
	p, ok := d.Properties.Get(prop)
	if !ok {
		return nil, fmt.Errorf("schema definition %s has no %s property", def, prop)
	}
	return p.Enum, nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	// check llm config if selected
	if cfg.Translate.Provider == ProviderLLM && cfg.Translate.LLM.Model == "" {
		return fmt.Errorf("translate.llm.model is required when llm provider is selected")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
