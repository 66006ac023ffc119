package cpu

import (
	"math"
	"testing"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

func TestMatMul_Float64(t *testing.T) {
	backend := New()

	// [[1, 2], [3, 4]] @ [[5, 6], [7, 8]] = [[19, 22], [43, 50]]
	a := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawFloat64(t, []float64{5, 6, 7, 8}, tensor.Shape{2, 2})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Expected shape [2 2], got %v", result.Shape())
	}
	expected := []float64{19, 22, 43, 50}
	for i, want := range expected {
		if got := result.AsFloat64()[i]; math.Abs(got-want) > epsilon {
			t.Errorf("MatMul[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMatMul_Float32(t *testing.T) {
	backend := New()

	a := rawFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := rawFloat32(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Expected shape [2 2], got %v", result.Shape())
	}
	expected := []float32{58, 64, 139, 154}
	for i, want := range expected {
		if got := result.AsFloat32()[i]; math.Abs(float64(got-want)) > epsilon {
			t.Errorf("MatMul[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMatMul_NonSquare(t *testing.T) {
	backend := New()

	// (1, 3) @ (3, 1) -> (1, 1): a dot product.
	a := rawFloat64(t, []float64{1, 2, 3}, tensor.Shape{1, 3})
	b := rawFloat64(t, []float64{4, 5, 6}, tensor.Shape{3, 1})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{1, 1}) {
		t.Fatalf("Expected shape [1 1], got %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 32 {
		t.Errorf("MatMul = %v, want 32", got)
	}
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	backend := New()

	a := rawFloat64(t, make([]float64, 6), tensor.Shape{2, 3})
	b := rawFloat64(t, make([]float64, 8), tensor.Shape{2, 4})

	defer func() {
		if r := recover(); r == nil {
			t.Error("MatMul with mismatched inner dimensions did not panic")
		}
	}()
	backend.MatMul(a, b)
}

func TestMatMul_Requires2D(t *testing.T) {
	backend := New()

	a := rawFloat64(t, make([]float64, 3), tensor.Shape{3})
	b := rawFloat64(t, make([]float64, 3), tensor.Shape{3})

	defer func() {
		if r := recover(); r == nil {
			t.Error("MatMul on 1D tensors did not panic")
		}
	}()
	backend.MatMul(a, b)
}
