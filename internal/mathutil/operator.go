package mathutil

import "fmt"

// Operator is one of the four calculator operations
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

var operatorSymbols = [...]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// Operators returns all operators in declaration order
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOperator decodes an operator symbol
func ParseOperator(symbol string) (Operator, error) {
	for _, op := range Operators() {
		if operatorSymbols[op] == symbol {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w (got %q)", ErrInvalidOperator, symbol)
}

// String returns the operator symbol
func (o Operator) String() string {
	if !o.valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorSymbols[o]
}

func (o Operator) valid() bool {
	return o >= OpAdd && o <= OpDivide
}
