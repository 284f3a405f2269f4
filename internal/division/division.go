package division

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shinji-kodama/intdiv/internal/model"
)

var (
	// ErrInvalidFormat indicates an operand could not be parsed as an int32.
	ErrInvalidFormat = errors.New("invalid integer format")

	// ErrDivideByZero indicates a division with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
)

// ParseOperand parses s as a signed base-10 int32.
//
// An optional leading '+' or '-' is accepted. Whitespace, digit separators,
// base prefixes and values outside [math.MinInt32, math.MaxInt32] are
// rejected with an error wrapping ErrInvalidFormat.
func ParseOperand(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return int32(n), nil
}

// Divide returns num1 / num2 truncated toward zero.
//
// math.MinInt32 / -1 wraps around to math.MinInt32, which is Go's defined
// two's-complement behavior for int32.
func Divide(num1, num2 int32) (int32, error) {
	if num2 == 0 {
		return 0, ErrDivideByZero
	}
	return num1 / num2, nil
}

// Evaluate parses both raw operand lines and divides them. The first
// operand is parsed before the second; if either fails to parse, no
// division is attempted.
func Evaluate(num1Input, num2Input string) model.Outcome {
	num1, err := ParseOperand(num1Input)
	if err != nil {
		return model.NewInvalidFormat(num1Input, num2Input)
	}
	num2, err := ParseOperand(num2Input)
	if err != nil {
		return model.NewInvalidFormat(num1Input, num2Input)
	}

	quotient, err := Divide(num1, num2)
	if err != nil {
		return model.NewDivideByZero(num1Input, num2Input, num1)
	}
	return model.NewSuccess(num1Input, num2Input, num1, num2, quotient)
}
