package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes columns to zero mean and unit variance.
//
// Fit computes per-column population moments, Transform applies
// (x - mean) / std, and InverseTransform undoes it exactly:
// InverseTransform(Transform(x)) recovers x up to float rounding. Columns
// with zero variance keep std = 1 so the round trip stays exact.
type StandardScaler struct {
	mean []float64
	std  []float64
}

// NewStandardScaler creates an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes column means and standard deviations from x.
func (s *StandardScaler) Fit(x *mat.Dense) {
	rows, cols := x.Dims()
	if rows == 0 {
		panic("scaler: cannot fit on an empty matrix")
	}

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.PopStdDev(col, nil)
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
}

// Transform returns a standardized copy of x: (x - mean) / std per column.
func (s *StandardScaler) Transform(x *mat.Dense) *mat.Dense {
	s.mustBeFitted(x, "transform")

	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (x.At(i, j)-s.mean[j])/s.std[j])
		}
	}
	return out
}

// FitTransform fits the scaler on x and returns the standardized copy.
func (s *StandardScaler) FitTransform(x *mat.Dense) *mat.Dense {
	s.Fit(x)
	return s.Transform(x)
}

// InverseTransform maps standardized values back to the original units:
// x * std + mean per column.
func (s *StandardScaler) InverseTransform(x *mat.Dense) *mat.Dense {
	s.mustBeFitted(x, "inverse transform")

	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, x.At(i, j)*s.std[j]+s.mean[j])
		}
	}
	return out
}

// Mean returns a copy of the fitted per-column means.
func (s *StandardScaler) Mean() []float64 {
	out := make([]float64, len(s.mean))
	copy(out, s.mean)
	return out
}

// Std returns a copy of the fitted per-column standard deviations.
func (s *StandardScaler) Std() []float64 {
	out := make([]float64, len(s.std))
	copy(out, s.std)
	return out
}

func (s *StandardScaler) mustBeFitted(x *mat.Dense, op string) {
	if s.mean == nil {
		panic(fmt.Sprintf("scaler: %s called before Fit", op))
	}
	_, cols := x.Dims()
	if cols != len(s.mean) {
		panic(fmt.Sprintf("scaler: %s expects %d columns, got %d", op, len(s.mean), cols))
	}
}
