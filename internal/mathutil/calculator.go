package mathutil

import "fmt"

// Calculate applies op to a and b
func Calculate(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("failed to divide %g: %w", a, ErrDivisionByZero)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w (got %s)", ErrInvalidOperator, op)
	}
}

// Calculator parses symbol and applies it to a and b.
// The symbol must be one of "+", "-", "*" or "/".
func Calculator(a, b float64, symbol string) (float64, error) {
	op, err := ParseOperator(symbol)
	if err != nil {
		return 0, err
	}
	return Calculate(a, b, op)
}
