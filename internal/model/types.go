package model

import (
	"fmt"
	"strconv"
)

// User-facing output lines. These strings are part of the CLI contract and
// must be reproduced byte-for-byte on stdout.
const (
	// PromptNum1 is written before the first operand is read.
	PromptNum1 = "Enter the first integer (Num1): "

	// PromptNum2 is written before the second operand is read.
	PromptNum2 = "Enter the second integer (Num2): "

	// ResultPrefix precedes the quotient on a successful run.
	ResultPrefix = "Result: "

	// MessageInvalidFormat is printed when either operand fails to parse.
	MessageInvalidFormat = "Error: Please enter valid integers."

	// MessageDivideByZero is printed when the second operand is zero.
	MessageDivideByZero = "Error: Cannot divide by zero."
)

// OutcomeKind identifies which terminal state a division run ended in.
// Every run ends in exactly one of:
//
//	read → parse → divide → [Success]
//	read → parse ✗        → [InvalidFormat]
//	read → parse → divide ✗ → [DivideByZero]
type OutcomeKind string

const (
	// OutcomeSuccess indicates both operands parsed and the division succeeded.
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeInvalidFormat indicates at least one operand was not a valid
	// base-10 integer, or the input ended before both operands were read.
	OutcomeInvalidFormat OutcomeKind = "invalid-format"

	// OutcomeDivideByZero indicates the second operand parsed as zero.
	OutcomeDivideByZero OutcomeKind = "divide-by-zero"
)

// String returns the string representation of OutcomeKind.
func (k OutcomeKind) String() string {
	return string(k)
}

// IsValid checks whether the OutcomeKind value is one of the
// predefined terminal states.
func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomeSuccess, OutcomeInvalidFormat, OutcomeDivideByZero:
		return true
	default:
		return false
	}
}

// ExitCode returns the exit code used for this outcome when strict exit
// codes are requested. Without --strict-exit every outcome exits 0.
func (k OutcomeKind) ExitCode() ExitCode {
	switch k {
	case OutcomeSuccess:
		return ExitSuccess
	case OutcomeInvalidFormat:
		return ExitInvalidInput
	case OutcomeDivideByZero:
		return ExitDivideByZero
	default:
		return ExitGeneralError
	}
}

// Outcome is the result of a single division run.
//
// Quotient is only meaningful when Kind is OutcomeSuccess. Num1 and Num2
// are only meaningful when the respective operand parsed, which is always
// the case for OutcomeSuccess and OutcomeDivideByZero.
type Outcome struct {
	// Kind is the terminal state of the run.
	Kind OutcomeKind `json:"kind" yaml:"kind"`

	// Num1Input is the raw first line as read, without its line terminator.
	Num1Input string `json:"num1Input" yaml:"num1Input"`

	// Num2Input is the raw second line as read, without its line terminator.
	Num2Input string `json:"num2Input" yaml:"num2Input"`

	// Num1 is the parsed dividend.
	Num1 int32 `json:"num1" yaml:"num1"`

	// Num2 is the parsed divisor.
	Num2 int32 `json:"num2" yaml:"num2"`

	// Quotient is Num1 / Num2 truncated toward zero.
	Quotient int32 `json:"result" yaml:"result"`

	// Message is the exact line printed in text mode.
	Message string `json:"message" yaml:"message"`
}

// NewSuccess builds a successful Outcome for the given operands and quotient.
func NewSuccess(num1Input, num2Input string, num1, num2, quotient int32) Outcome {
	return Outcome{
		Kind:      OutcomeSuccess,
		Num1Input: num1Input,
		Num2Input: num2Input,
		Num1:      num1,
		Num2:      num2,
		Quotient:  quotient,
		Message:   ResultPrefix + strconv.FormatInt(int64(quotient), 10),
	}
}

// NewInvalidFormat builds an Outcome for operands that failed to parse.
func NewInvalidFormat(num1Input, num2Input string) Outcome {
	return Outcome{
		Kind:      OutcomeInvalidFormat,
		Num1Input: num1Input,
		Num2Input: num2Input,
		Message:   MessageInvalidFormat,
	}
}

// NewDivideByZero builds an Outcome for a zero divisor.
func NewDivideByZero(num1Input, num2Input string, num1 int32) Outcome {
	return Outcome{
		Kind:      OutcomeDivideByZero,
		Num1Input: num1Input,
		Num2Input: num2Input,
		Num1:      num1,
		Message:   MessageDivideByZero,
	}
}

// OK reports whether the run produced a quotient.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// String returns the text-mode output line for the outcome.
func (o Outcome) String() string {
	return o.Message
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the --config file could not be read or parsed.
	ExitConfigError ExitCode = 2

	// ExitIOError indicates reading stdin or writing stdout failed for a
	// reason other than end of input.
	ExitIOError ExitCode = 3

	// ExitInvalidInput indicates an operand was not a valid integer.
	// Only used with --strict-exit.
	ExitInvalidInput ExitCode = 4

	// ExitDivideByZero indicates the divisor was zero.
	// Only used with --strict-exit.
	ExitDivideByZero ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Silent suppresses the stderr error report. It is set when the
	// user-facing line has already been printed on stdout and only the
	// exit code remains to be propagated.
	Silent bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// NewExitOnly creates a CLIError that only carries an exit code. Execute
// exits with the code without printing anything further.
func NewExitOnly(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message, Silent: true}
}
