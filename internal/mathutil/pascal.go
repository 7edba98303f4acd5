package mathutil

import (
	"fmt"
	"math/big"
)

// PascalsTriangleRow returns row n of Pascal's triangle, C(n,0)..C(n,n)
func PascalsTriangleRow(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: row index %d is negative", ErrInvalidArgument, n)
	}
	switch n {
	case 0:
		return []*big.Int{big.NewInt(1)}, nil
	case 1:
		return []*big.Int{big.NewInt(1), big.NewInt(1)}, nil
	}

	row := make([]*big.Int, 1, n+1)
	row[0] = big.NewInt(1)
	for k := 1; k <= n; k++ {
		// row[k-1]*(n-k+1) is always divisible by k; multiply first
		coeff := new(big.Int).Mul(row[k-1], big.NewInt(int64(n-k+1)))
		coeff.Quo(coeff, big.NewInt(int64(k)))
		row = append(row, coeff)
	}
	return row, nil
}
