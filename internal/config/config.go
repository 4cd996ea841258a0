// Package config loads the loader's runtime settings. There are no CLI
// flags; everything comes from config.yaml plus environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config.yaml"

// Config holds the fixed paths one run works against
type Config struct {
	InputFile    string `yaml:"input_file" validate:"required"`
	DatabasePath string `yaml:"database_path" validate:"required"`
}

// Load reads config.yaml when present, applies defaults for anything unset,
// then environment overrides (WICKET_INPUT_FILE, WICKET_DATABASE_PATH). An
// optional .env file is honored before the environment is read.
func Load() (*Config, error) {
	return LoadFile(defaultConfigFile)
}

// LoadFile is Load with an explicit config file path
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		InputFile:    "international_data.json",
		DatabasePath: "cricket_warehouse.db",
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if v := os.Getenv("WICKET_INPUT_FILE"); v != "" {
		cfg.InputFile = v
	}
	if v := os.Getenv("WICKET_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
