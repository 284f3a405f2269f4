package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/intdiv/internal/model"
)

// Format selects how an Outcome is written. It implements pflag.Value so
// it can be bound directly to a cobra flag.
type Format string

const (
	// FormatText writes the single human-readable result line.
	FormatText Format = "text"

	// FormatJSON writes the Outcome as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML writes the Outcome as a YAML document.
	FormatYAML Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

// String returns the string representation of Format.
func (f *Format) String() string {
	return string(*f)
}

// Set parses s into f. It satisfies pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type returns the type name shown in flag help output.
func (f *Format) Type() string {
	return "format"
}

// IsStructured reports whether the format is meant for machines rather
// than an interactive terminal.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// ParseFormat converts a string to a Format.
// Returns an error if the string does not match any valid format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
}

// Write renders outcome to w in the given format.
func Write(w io.Writer, outcome model.Outcome, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, outcome.Message)
		return err

	case FormatJSON:
		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode outcome as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&outcome); err != nil {
			return fmt.Errorf("failed to encode outcome as YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("invalid output format: %q", format)
	}
}
