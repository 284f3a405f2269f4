// Package model defines the domain types and value objects for the
// intdiv CLI.
//
// This package contains pure data structures with no external dependencies.
// The central type is Outcome, a tagged result that records which of the
// three terminal states (success, invalid-format, divide-by-zero) a run
// ended in. Outcomes are transient: one is produced per run and discarded.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
