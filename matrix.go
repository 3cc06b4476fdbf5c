package hclust

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DistancesFromMatrix copies a square gonum matrix into the flat row-major
// form used by Agglomerate, returning the data and its dimension n.
// A *mat.SymDense is the natural input, but any square mat.Matrix works.
func DistancesFromMatrix(m mat.Matrix) ([]float64, int, error) {
	r, c := m.Dims()
	if r != c {
		return nil, 0, fmt.Errorf("%w: matrix is %d×%d, want square", ErrDimensionMismatch, r, c)
	}
	if r == 0 {
		return nil, 0, ErrEmptyInput
	}

	flat := make([]float64, r*r)
	dense := mat.NewDense(r, r, flat)
	dense.Copy(m)
	return flat, r, nil
}

