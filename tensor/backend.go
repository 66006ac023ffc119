// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: dense row-major kernels with gonum BLAS matmul
//
// Decorator backends for additional functionality:
//   - autodiff: reverse-mode automatic differentiation (wraps any backend)
//
// Example:
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Matrix operations (2D).
	MatMul(a, b *RawTensor) *RawTensor // Matrix multiplication.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.
	PowScalar(x *RawTensor, scalar any) *RawTensor // Raise to scalar power.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor  // Exponential.
	Log(x *RawTensor) *RawTensor  // Natural logarithm.
	Sqrt(x *RawTensor) *RawTensor // Square root.
	Neg(x *RawTensor) *RawTensor  // Negation.

	// Activation functions.
	ReLU(x *RawTensor) *RawTensor    // max(0, x).
	Sigmoid(x *RawTensor) *RawTensor // 1 / (1 + exp(-x)).
	Tanh(x *RawTensor) *RawTensor    // Hyperbolic tangent.

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor                            // Total sum (scalar result).
	Mean(x *RawTensor) *RawTensor                           // Total mean (scalar result).
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor  // Sum along dimension.
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Mean along dimension.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Transpose dimensions.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "Autodiff(CPU)").
	Device() Device // Device type.
}

// Compile-time check that the internal Backend matches the public Backend.
var _ Backend = tensor.Backend(nil)
