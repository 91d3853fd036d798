package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urmzd/roomstatus/pkg/config/schema"
)

//go:embed room.schema.json
var roomSchema []byte

var validator = schema.NewValidator()

// Schema returns the JSON Schema room configurations are validated against.
func Schema() json.RawMessage {
	return json.RawMessage(roomSchema)
}

// Parse validates a JSON room configuration and applies defaults.
func Parse(raw []byte) (*Config, error) {
	if len(raw) == 0 {
		return nil, ErrEmpty
	}

	if err := validator.ValidateJSON(Schema(), raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses a room configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns a configuration with no mappings and all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
