package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/intdiv/internal/model"
	"github.com/shinji-kodama/intdiv/internal/render"
)

// File is the on-disk configuration. Pointer fields distinguish "not set"
// from an explicit false.
type File struct {
	// Format is the output format: text, json or yaml.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Verbose enables diagnostic output on stderr.
	Verbose *bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	// NoColor disables colored diagnostics.
	NoColor *bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`

	// StrictExit makes the invalid-format and divide-by-zero paths exit
	// with non-zero codes.
	StrictExit *bool `json:"strictExit,omitempty" yaml:"strictExit,omitempty"`
}

// Load reads and validates the configuration file at path.
//
// Returns a CLIError with ExitConfigError if the file is missing, cannot be
// parsed, or contains an invalid value.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to read config file", err)
	}

	cfg, err := Parse(data, isYAML(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path),
			err,
		)
	}
	return cfg, nil
}

// Parse decodes configuration bytes as YAML or JSONC and validates them.
func Parse(data []byte, asYAML bool) (*File, error) {
	var cfg File
	if asYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	} else {
		// Strip // and /* */ comments and trailing commas first.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that have a closed set of options.
func (f *File) Validate() error {
	if f.Format == "" {
		return nil
	}
	if _, err := render.ParseFormat(f.Format); err != nil {
		return err
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
