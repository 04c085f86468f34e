package config

// MetadataConfig contains the static GPX metadata block and root attributes
type MetadataConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Desc    string `yaml:"desc"`
	Creator string `yaml:"creator" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Metadata MetadataConfig `yaml:"metadata"`
	Logging  LoggingConfig  `yaml:"logging"`
}
