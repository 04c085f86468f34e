// Package config handles application configuration loading and validation.
//
// Configuration is optional. Without a file the converter uses the built-in
// defaults (Chichester Harbour metadata, info-level logging). A YAML file
// passed with --config is overlaid on those defaults and validated using
// struct tags.
package config
