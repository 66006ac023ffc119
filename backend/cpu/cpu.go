// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/Machine-Learning-S25/WK12/internal/backend/cpu"
	"github.com/Machine-Learning-S25/WK12/tensor"
)

// Backend represents the CPU backend implementation.
//
// All kernels are dense row-major Go code; matrix multiplication runs
// through gonum's BLAS implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    _ = x
//	}
func New() *Backend {
	return internalcpu.New()
}
