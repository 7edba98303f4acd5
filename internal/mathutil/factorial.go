package mathutil

import (
	"fmt"
	"math/big"
)

// Factorial returns n! with arbitrary precision
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeInput, n)
	}

	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result, nil
}
