package problem

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateFeature indicates a feature column with zero range, which
// makes min-max normalization ill-defined.
type ErrDegenerateFeature struct {
	Feature int
	Value   float64
}

func (e *ErrDegenerateFeature) Error() string {
	return fmt.Sprintf("degenerate feature %d: constant value %v, cannot normalize", e.Feature, e.Value)
}

// ErrDimensionMismatch indicates a search vector of the wrong length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Scaler holds the per-feature min and max of a dataset. It maps the
// dataset into the unit cube and maps solutions found there back to the
// original coordinate scale.
type Scaler struct {
	Min []float64
	Max []float64
}

// NewScaler computes per-feature bounds from an N x D dataset. A feature
// with zero range yields ErrDegenerateFeature instead of a scaler that
// would divide by zero.
func NewScaler(data *mat.Dense) (*Scaler, error) {
	n, d := data.Dims()
	if n == 0 || d == 0 {
		return nil, &ErrDimensionMismatch{Expected: 1, Actual: 0}
	}

	s := &Scaler{
		Min: make([]float64, d),
		Max: make([]float64, d),
	}

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, data)
		s.Min[j] = floats.Min(col)
		s.Max[j] = floats.Max(col)
		if s.Max[j] == s.Min[j] {
			return nil, &ErrDegenerateFeature{Feature: j, Value: s.Min[j]}
		}
	}

	return s, nil
}

// Features returns the number of features the scaler was computed from.
func (s *Scaler) Features() int {
	return len(s.Min)
}

// Normalize maps every feature of m into [0,1] via (v-min)/(max-min).
// m may be the dataset itself or any matrix in dataset coordinates with
// the same feature count, e.g. a k x D center matrix.
func (s *Scaler) Normalize(m *mat.Dense) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if cols != s.Features() {
		return nil, &ErrDimensionMismatch{Expected: s.Features(), Actual: cols}
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (m.At(i, j)-s.Min[j])/(s.Max[j]-s.Min[j]))
		}
	}
	return out, nil
}

// Retransform maps a flat normalized solution vector of length k*D back to
// a k x D center matrix in original dataset coordinates. Each contiguous
// block of D values is one center (row-major), the exact inverse of
// Flatten after Normalize.
func (s *Scaler) Retransform(x []float64, k int) (*mat.Dense, error) {
	d := s.Features()
	if len(x) != k*d {
		return nil, &ErrDimensionMismatch{Expected: k * d, Actual: len(x)}
	}

	out := make([]float64, len(x))
	for i, v := range x {
		j := i % d
		out[i] = v*(s.Max[j]-s.Min[j]) + s.Min[j]
	}
	return mat.NewDense(k, d, out), nil
}

// Flatten returns the rows of m concatenated into one row-major vector.
func Flatten(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, mat.Row(nil, i, m)...)
	}
	return out
}
