package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for errors and fills in defaults for fields a
// settings file explicitly blanked out.
func Validate(cfg *Config) error {
	if cfg.Document == "" {
		cfg.Document = DefaultDocument
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	if cfg.Outputs == "" {
		cfg.Outputs = DefaultOutputs
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	for name, v := range map[string]string{
		"document": cfg.Document,
		"fallback": cfg.Fallback,
		"outputs":  cfg.Outputs,
		"log-file": cfg.LogFile,
	} {
		if strings.ContainsAny(v, "/\\") {
			return fmt.Errorf("config: %q must be a bare filename, got %q", name, v)
		}
	}
	if cfg.Document == cfg.Fallback {
		return fmt.Errorf("config: 'document' and 'fallback' must differ (both %q)", cfg.Document)
	}
	return nil
}
