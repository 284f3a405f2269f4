// Package cli — divide.go implements the prompt → parse → divide → print
// flow run by the root command.
//
// Orchestration steps:
//  1. Open a console session on stdin (closed on every return path)
//  2. Prompt for and read the first operand
//  3. Prompt for and read the second operand
//  4. Parse and divide (division.Evaluate)
//  5. Render the outcome in the selected format
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/intdiv/internal/console"
	"github.com/shinji-kodama/intdiv/internal/division"
	"github.com/shinji-kodama/intdiv/internal/model"
	"github.com/shinji-kodama/intdiv/internal/render"
)

// runDivide is the main logic function for the root command.
//
// Invalid input and a zero divisor are recovered here: their message is
// printed on stdout and nil is returned, unless --strict-exit asks for a
// non-zero exit code.
func runDivide(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()

	// Prompts share stdout with the result in text mode. Structured formats
	// move them to stderr so stdout holds a single parseable document.
	promptOut := stdout
	if outputFormat.IsStructured() {
		promptOut = cmd.ErrOrStderr()
	}

	session := console.NewSession(cmd.InOrStdin(), promptOut)
	defer func() {
		if err := session.Close(); err != nil {
			VerboseLog("Warning: failed to close input: %v", err)
			return
		}
		VerboseLog("Input closed")
	}()

	outcome, err := readOutcome(session)
	if err != nil {
		return err
	}
	VerboseLog("Outcome: %s", outcome.Kind)

	// The prompts have no trailing newline; in structured modes terminate
	// the prompt line on stderr so the terminal stays tidy.
	if outputFormat.IsStructured() {
		_, _ = io.WriteString(promptOut, "\n")
	}

	if err := render.Write(stdout, outcome, outputFormat); err != nil {
		return model.WrapCLIError(model.ExitIOError, "failed to write result", err)
	}

	if strictExit && !outcome.OK() {
		return model.NewExitOnly(outcome.Kind.ExitCode(), outcome.Message)
	}
	return nil
}

// readOutcome reads both operands from session and evaluates them.
//
// Both prompts are always shown. If the input ends before a line could be
// read for either operand, the run is treated as invalid input. Any other
// read or prompt failure is returned as an ExitIOError.
func readOutcome(session *console.Session) (model.Outcome, error) {
	num1Input, err1 := session.Prompt(model.PromptNum1)
	if err1 != nil && !errors.Is(err1, console.ErrNoInput) {
		return model.Outcome{}, model.WrapCLIError(model.ExitIOError, "failed to read first operand", err1)
	}
	VerboseLog("Read first operand: %q", num1Input)

	num2Input, err2 := session.Prompt(model.PromptNum2)
	if err2 != nil && !errors.Is(err2, console.ErrNoInput) {
		return model.Outcome{}, model.WrapCLIError(model.ExitIOError, "failed to read second operand", err2)
	}
	VerboseLog("Read second operand: %q", num2Input)

	if err1 != nil || err2 != nil {
		VerboseLog("Input ended before both operands were read")
		return model.NewInvalidFormat(num1Input, num2Input), nil
	}
	return division.Evaluate(num1Input, num2Input), nil
}
