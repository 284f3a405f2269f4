package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned by Prompt when the input stream is exhausted
// before a line could be read. It wraps io.EOF.
var ErrNoInput = fmt.Errorf("no input available: %w", io.EOF)

// Session pairs an input stream with the writer that prompts are shown on.
// It is not safe for concurrent use.
type Session struct {
	src    io.Reader
	reader *bufio.Reader
	out    io.Writer

	closed bool
}

// NewSession creates a Session reading from in and prompting on out.
// If in implements io.Closer it is closed by Session.Close.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		src:    in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes label (without a trailing newline) and reads one line of
// input. The returned line has its "\n" or "\r\n" terminator removed; all
// other characters are returned untouched.
//
// A final line that is not newline-terminated is still returned. If the
// stream is already exhausted, Prompt returns ErrNoInput.
func (s *Session) Prompt(label string) (string, error) {
	if s.closed {
		return "", errors.New("console: prompt on closed session")
	}

	if _, err := io.WriteString(s.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Close releases the input stream. Only the first call has any effect;
// later calls return nil.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}
