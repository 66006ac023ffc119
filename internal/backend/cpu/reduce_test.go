package cpu

import (
	"math"
	"testing"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

func TestSum(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	result := backend.Sum(x)
	if len(result.Shape()) != 0 {
		t.Fatalf("Expected scalar shape [], got %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
}

func TestMean(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{4})

	result := backend.Mean(x)
	if got := result.AsFloat64()[0]; got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestSumDim_2D(t *testing.T) {
	backend := New()

	// [[1, 2, 3], [4, 5, 6]]
	x := rawFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	// Along the last dim: row sums.
	rows := backend.SumDim(x, -1, true)
	if !rows.Shape().Equal(tensor.Shape{2, 1}) {
		t.Fatalf("Expected shape [2 1], got %v", rows.Shape())
	}
	if rows.AsFloat64()[0] != 6 || rows.AsFloat64()[1] != 15 {
		t.Errorf("Row sums = %v, want [6 15]", rows.AsFloat64())
	}

	// Along dim 0: column sums, reduced dim removed.
	cols := backend.SumDim(x, 0, false)
	if !cols.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("Expected shape [3], got %v", cols.Shape())
	}
	for i, want := range []float64{5, 7, 9} {
		if got := cols.AsFloat64()[i]; got != want {
			t.Errorf("Column sum[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestSumDim_1D_DropsToScalar(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{4})

	result := backend.SumDim(x, 0, false)
	if len(result.Shape()) != 0 {
		t.Fatalf("Expected scalar shape [], got %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 10 {
		t.Errorf("SumDim = %v, want 10", got)
	}
}

func TestMeanDim(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.MeanDim(x, 1, false)
	if !result.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("Expected shape [2], got %v", result.Shape())
	}
	if math.Abs(result.AsFloat64()[0]-2) > epsilon || math.Abs(result.AsFloat64()[1]-5) > epsilon {
		t.Errorf("Row means = %v, want [2 5]", result.AsFloat64())
	}
}

func TestSumDim_InvalidDim(t *testing.T) {
	backend := New()
	x := rawFloat64(t, make([]float64, 4), tensor.Shape{2, 2})

	defer func() {
		if r := recover(); r == nil {
			t.Error("SumDim with out-of-range dim did not panic")
		}
	}()
	backend.SumDim(x, 2, false)
}
