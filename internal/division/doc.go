// Package division parses operands and performs truncating 32-bit integer
// division for the intdiv CLI.
//
// Failures are reported as plain error values rather than panics:
//
//   - ErrInvalidFormat: an operand is not a base-10 integer in int32 range
//   - ErrDivideByZero: the divisor is zero
//
// Evaluate folds both steps into a model.Outcome, the tagged result the CLI
// layer renders.
package division
