// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the WK12 training
// library.
//
// # Overview
//
// Tensors are the fundamental data structure of the library. This package
// provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy reshapes where possible
//   - Pluggable compute backends
//
// # Basic Usage
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    result := z.MatMul(y.T())
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32 and float64. The demos and the nn
// package compute in float64, matching the numerics they reproduce; float32
// shares the same kernels.
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float64](tensor.Shape{3, 1}, backend)  // (3, 1)
//	b := tensor.Ones[float64](tensor.Shape{3, 4}, backend)   // (3, 4)
//	c := a.Add(b)                                            // (3, 4)
//
// # Memory Management
//
// Buffers are reference-counted with copy-on-write semantics: clones and
// views share storage, and kernels may reuse a buffer in place only while it
// has a single holder. The autodiff engine relies on this protocol to keep
// recorded operands immutable.
//
// # Operations
//
// Tensor[T, B] methods cover broadcast arithmetic (Add, Sub, Mul, Div),
// matrix multiplication, scalar arithmetic (AddScalar through PowScalar),
// unary math (Exp, Log, Sqrt, Neg), the ReLU/Sigmoid/Tanh activations,
// reductions (Sum, Mean, SumDim, MeanDim), and shape operations (Reshape,
// Transpose, T). See the method documentation for details.
package tensor
