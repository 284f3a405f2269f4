// Package cli implements the cobra-based command for intdiv.
//
// The root command itself performs the division: it prompts for two
// integers, divides them, and prints a single result line. This file defines
// the root command, its global flags, and the error-to-exit-code handling.
// The division flow lives in divide.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/intdiv/internal/config"
	"github.com/shinji-kodama/intdiv/internal/model"
	"github.com/shinji-kodama/intdiv/internal/render"
)

// Global flag variables. They are rebound to their defaults every time
// NewRootCommand registers the flags.
var (
	// outputFormat selects text (default), json or yaml output on stdout.
	outputFormat = render.FormatText

	// verbose enables [verbose] diagnostics on stderr.
	verbose bool

	// noColor disables colored diagnostics on stderr.
	noColor bool

	// strictExit makes the two recovered error paths exit non-zero.
	strictExit bool

	// configPath is the optional --config file.
	configPath string

	// diagOut receives verbose logs and error reports.
	diagOut io.Writer = os.Stderr
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Colors for stderr diagnostics. fatih/color disables them automatically
// when stderr is not a terminal or NO_COLOR is set.
var (
	errorColor   = color.New(color.FgRed, color.Bold)
	verboseColor = color.New(color.Faint)
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intdiv",
		Short: "Divide two integers read from standard input",
		Long: `intdiv prompts for two integers, divides the first by the second using
truncating 32-bit integer division, and prints the result.

Malformed input prints "Error: Please enter valid integers." and a zero
divisor prints "Error: Cannot divide by zero." Both are reported on
stdout and the command exits normally unless --strict-exit is given.

Examples:
  intdiv
  printf '7\n2\n' | intdiv
  printf '7\n2\n' | intdiv --format json`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Errors are reported by Execute.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			diagOut = cmd.ErrOrStderr()
			if err := applyConfig(cmd); err != nil {
				return err
			}
			if noColor {
				color.NoColor = true
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivide(cmd)
		},
	}

	outputFormat = render.FormatText
	rootCmd.PersistentFlags().Var(&outputFormat, "format", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&strictExit, "strict-exit", false,
		"Exit with code 4 on invalid input and 5 on division by zero")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSONC or YAML config file")

	return rootCmd
}

// applyConfig merges the --config file into the flag variables. Flags set
// explicitly on the command line take precedence over the file.
func applyConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	if cfg.Format != "" && !flags.Changed("format") {
		if err := outputFormat.Set(cfg.Format); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "invalid config file", err)
		}
	}
	if cfg.Verbose != nil && !flags.Changed("verbose") {
		verbose = *cfg.Verbose
	}
	if cfg.NoColor != nil && !flags.Changed("no-color") {
		noColor = *cfg.NoColor
	}
	if cfg.StrictExit != nil && !flags.Changed("strict-exit") {
		strictExit = *cfg.StrictExit
	}

	VerboseLog("Loaded config from %s", configPath)
	return nil
}

// Execute runs the root command and exits the process with the code
// derived from its error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(reportError(err)))
	}
}

// reportError prints err to stderr (unless it is silent) and returns the
// exit code it maps to. CLIError types carry their own exit codes; other
// errors, including cobra flag errors, default to ExitGeneralError.
func reportError(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Silent {
			printError(cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}

	printError(err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --format flag.
func printError(message string, underlying error) {
	if outputFormat == render.FormatJSON {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(diagOut, string(data))
		return
	}

	_, _ = errorColor.Fprint(diagOut, "Error:")
	if underlying != nil {
		fmt.Fprintf(diagOut, " %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(diagOut, " %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		_, _ = verboseColor.Fprintf(diagOut, "[verbose] "+format+"\n", args...)
	}
}
