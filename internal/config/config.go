package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used when fractura.yaml is absent or leaves a field empty.
const (
	DefaultDocument = "FRACTURA.Δ02.json"
	DefaultFallback = "FRACTURA_D02.json"
	DefaultOutputs  = "outputs"
	DefaultLogFile  = "fractura_debug.log"
)

// FileName is the settings file looked up at the workspace root.
const FileName = "fractura.yaml"

// Config holds the tool settings.
type Config struct {
	Document string `yaml:"document"` // primary ritual document filename
	Fallback string `yaml:"fallback"` // alternate filename convention
	Outputs  string `yaml:"outputs"`  // output directory name
	LogFile  string `yaml:"log-file"` // debug log filename
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	return &Config{
		Document: DefaultDocument,
		Fallback: DefaultFallback,
		Outputs:  DefaultOutputs,
		LogFile:  DefaultLogFile,
	}
}

// Load reads a YAML settings file and returns a validated Config. A missing
// file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
