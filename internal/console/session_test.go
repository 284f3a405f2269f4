package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader records how many times Close was called on it.
type countingReader struct {
	io.Reader
	closes int
}

func (c *countingReader) Close() error {
	c.closes++
	return nil
}

// failingReader returns a non-EOF error on every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device not ready")
}

// TestSession_Prompt verifies prompt output and line terminator handling.
func TestSession_Prompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two unix lines",
			input: "7\n2\n",
			want:  []string{"7", "2"},
		},
		{
			name:  "windows line endings",
			input: "7\r\n2\r\n",
			want:  []string{"7", "2"},
		},
		{
			name:  "last line without newline",
			input: "7\n2",
			want:  []string{"7", "2"},
		},
		{
			name:  "surrounding spaces are preserved",
			input: " 7 \n2\n",
			want:  []string{" 7 ", "2"},
		},
		{
			name:  "empty line is a line",
			input: "\n2\n",
			want:  []string{"", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewSession(strings.NewReader(tt.input), &out)

			first, err := s.Prompt("A: ")
			require.NoError(t, err)
			second, err := s.Prompt("B: ")
			require.NoError(t, err)

			assert.Equal(t, tt.want, []string{first, second})
			assert.Equal(t, "A: B: ", out.String())
		})
	}
}

// TestSession_PromptExhausted checks that reading past the end of input
// reports ErrNoInput, which also matches io.EOF.
func TestSession_PromptExhausted(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("5\n"), &out)

	_, err := s.Prompt("A: ")
	require.NoError(t, err)

	_, err = s.Prompt("B: ")
	assert.ErrorIs(t, err, ErrNoInput)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "A: B: ", out.String())
}

// TestSession_PromptReadError checks that non-EOF read errors are surfaced
// and are not confused with exhausted input.
func TestSession_PromptReadError(t *testing.T) {
	s := NewSession(failingReader{}, io.Discard)

	_, err := s.Prompt("A: ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoInput)
	assert.Contains(t, err.Error(), "device not ready")
}

// TestSession_Close verifies the underlying reader is closed exactly once.
func TestSession_Close(t *testing.T) {
	src := &countingReader{Reader: strings.NewReader("1\n")}
	s := NewSession(src, io.Discard)

	assert.False(t, s.Closed())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.True(t, s.Closed())
	assert.Equal(t, 1, src.closes)

	_, err := s.Prompt("A: ")
	assert.Error(t, err, "prompting after Close must fail")
}

// TestSession_CloseNonCloser checks Close on a reader without a Close method.
func TestSession_CloseNonCloser(t *testing.T) {
	s := NewSession(strings.NewReader(""), io.Discard)
	assert.NoError(t, s.Close())
	assert.True(t, s.Closed())
}
