package m

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromColumns builds a rows×len(cols) dense matrix where column k is cols[k].
// Every column must have exactly rows entries.
func FromColumns(rows int, cols [][]float64) (*mat.Dense, error) {
	if rows <= 0 || len(cols) == 0 {
		return nil, fmt.Errorf("matrix must be non-empty, got %dx%d", rows, len(cols))
	}
	o := mat.NewDense(rows, len(cols), nil)
	for k, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("column %d has %d entries, expected %d", k, len(col), rows)
		}
		o.SetCol(k, col)
	}
	return o, nil
}

// Dot returns the matrix-vector product m·v.
func Dot(m mat.Matrix, v []float64) ([]float64, error) {
	r, c := m.Dims()
	if len(v) != c {
		return nil, fmt.Errorf("inner dimensions must match: %d vs %d", c, len(v))
	}
	o := mat.NewVecDense(r, nil)
	o.MulVec(m, mat.NewVecDense(c, append([]float64(nil), v...)))
	return o.RawVector().Data, nil
}

// Add returns the elementwise sum a+b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return []float64{}, nil
	}
	o := mat.NewVecDense(len(a), nil)
	o.AddVec(mat.NewVecDense(len(a), append([]float64(nil), a...)), mat.NewVecDense(len(b), append([]float64(nil), b...)))
	return o.RawVector().Data, nil
}

// Apply returns fn applied to every element of v.
func Apply(fn func(float64) float64, v []float64) []float64 {
	o := make([]float64, len(v))
	for i, x := range v {
		o[i] = fn(x)
	}
	return o
}

// MatrixToRows copies m into a row-major [][]float64.
func MatrixToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
