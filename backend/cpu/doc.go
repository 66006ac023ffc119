// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor operations.
//
// # Overview
//
// This package implements the library's only compute backend:
//   - Dense row-major kernels in pure Go
//   - Matrix multiplication through gonum BLAS (blas64/blas32 Gemm)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - In-place buffer reuse when an operand's buffer is unique
//
// # Basic Usage
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/tensor"
//	    "github.com/Machine-Learning-S25/WK12/nn"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	    _ = z
//
//	    // Use with models
//	    model := nn.NewLinear(8, 1, backend)
//	    _ = model
//	}
//
// # Error Handling
//
// Shape and dtype violations panic immediately with an operation-prefixed
// message. There is no recovery path: a mismatch between model and data is
// a bug at the call site, and the panic points straight at it.
//
// # Differentiation
//
// The backend computes; it never records. Wrap it with autodiff.New to make
// operations on its tensors differentiable.
package cpu
