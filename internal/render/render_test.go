package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/intdiv/internal/model"
)

// TestParseFormat verifies string-to-format conversion,
// including case normalization and error cases.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false}, // case insensitive
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestFormat_Set checks the pflag.Value implementation.
func TestFormat_Set(t *testing.T) {
	f := FormatText
	require.NoError(t, f.Set("yaml"))
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "yaml", f.String())
	assert.Equal(t, "format", f.Type())

	assert.Error(t, f.Set("toml"))
	assert.Equal(t, FormatYAML, f, "a rejected value must not change the format")

	assert.False(t, FormatText.IsStructured())
	assert.True(t, FormatJSON.IsStructured())
	assert.True(t, FormatYAML.IsStructured())
}

// TestWrite_Text checks the exact stdout line for each terminal state.
func TestWrite_Text(t *testing.T) {
	tests := []struct {
		name    string
		outcome model.Outcome
		want    string
	}{
		{"success", model.NewSuccess("7", "2", 7, 2, 3), "Result: 3\n"},
		{"invalid", model.NewInvalidFormat("abc", "5"), "Error: Please enter valid integers.\n"},
		{"zero", model.NewDivideByZero("5", "0", 5), "Error: Cannot divide by zero.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.outcome, FormatText))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// TestWrite_JSON checks the structured JSON document.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, model.NewSuccess("-7", "2", -7, 2, -3), FormatJSON))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "success", got["kind"])
	assert.Equal(t, float64(-3), got["result"])
	assert.Equal(t, "-7", got["num1Input"])
	assert.Equal(t, "Result: -3", got["message"])
}

// TestWrite_YAML checks the structured YAML document.
func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, model.NewDivideByZero("5", "0", 5), FormatYAML))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "divide-by-zero", got["kind"])
	assert.Equal(t, 5, got["num1"])
	assert.Equal(t, "Error: Cannot divide by zero.", got["message"])
	assert.Equal(t, "0", got["num2Input"], "numeric-looking inputs stay strings")
}

// TestWrite_UnknownFormat rejects formats that bypassed ParseFormat.
func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, model.NewSuccess("1", "1", 1, 1, 1), Format("xml")))
	assert.Empty(t, buf.String())
}
