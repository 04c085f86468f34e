package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName    = "Chichester Harbour Racing Marks"
	DefaultDesc    = "Racing marks and waypoints for Chichester Harbour sailing"
	DefaultCreator = "Racing Marks Converter"
	DefaultLevel   = "info"
)

// Default returns the configuration used when no config file is given
func Default() AppConfig {
	return AppConfig{
		Metadata: MetadataConfig{
			Name:    DefaultName,
			Desc:    DefaultDesc,
			Creator: DefaultCreator,
		},
		Logging: LoggingConfig{Level: DefaultLevel},
	}
}

// LoadAppConfig loads the YAML file at path on top of Default and validates the result.
// An empty path returns the defaults unchanged.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLevel
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg
func Validate(cfg AppConfig) error {
	v := validator.New()
	return v.Struct(cfg)
}
