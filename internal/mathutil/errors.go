package mathutil

import "errors"

//nolint:stylecheck // ST1005: capitalized messages are part of the contract
var (
	// ErrDivisionByZero is returned when the divisor of a division is zero
	ErrDivisionByZero = errors.New("Division by zero is not allowed")

	// ErrInvalidOperator is returned for operator symbols outside + - * /
	ErrInvalidOperator = errors.New("Invalid operator. Use one of '+', '-', '*', '/'")

	// ErrNegativeInput is returned by Factorial for n < 0
	ErrNegativeInput = errors.New("Factorial is not defined for negative numbers")

	// ErrInvalidArgument is returned for a negative Pascal's triangle row index
	ErrInvalidArgument = errors.New("invalid argument")
)
