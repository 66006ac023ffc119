// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/Machine-Learning-S25/WK12/backend/cpu"
	"github.com/Machine-Learning-S25/WK12/nn"
	"github.com/Machine-Learning-S25/WK12/tensor"
)

// TestModuleInterface verifies that concrete types implement the Module
// interface through the public facade.
func TestModuleInterface(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name   string
		module nn.Module[*cpu.Backend]
	}{
		{
			name:   "Linear",
			module: nn.NewLinear(10, 5, backend),
		},
		{
			name: "Sequential",
			module: nn.NewSequential[*cpu.Backend](
				nn.NewLinear(10, 5, backend),
				nn.NewReLU[*cpu.Backend](),
			),
		},
		{
			name:   "ReLU",
			module: nn.NewReLU[*cpu.Backend](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tensor.Randn[float64](tensor.Shape{2, 10}, backend)
			output := tt.module.Forward(input)
			if output.Shape()[0] != 2 {
				t.Errorf("Forward() batch dimension = %d, want 2", output.Shape()[0])
			}

			// Parameter-free modules may return nil; parametric ones must not.
			params := tt.module.Parameters()
			if tt.name == "Linear" && len(params) != 2 {
				t.Errorf("Linear.Parameters() returned %d parameters, want 2", len(params))
			}
		})
	}
}

// TestLossFacade verifies the loss constructors compute the documented
// scalar objectives.
func TestLossFacade(t *testing.T) {
	backend := cpu.New()

	pred, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4, 1}, backend)
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}
	target, err := tensor.FromSlice([]float64{1, 2, 3, 2}, tensor.Shape{4, 1}, backend)
	if err != nil {
		t.Fatalf("FromSlice() error: %v", err)
	}

	// Squared errors: {0, 0, 0, 4}; MSE = 1, RMSE = 1.
	mse := nn.NewMSELoss[*cpu.Backend]().Forward(pred, target).Item()
	if mse != 1 {
		t.Errorf("MSELoss = %v, want 1", mse)
	}
	rmse := nn.NewRMSELoss[*cpu.Backend]().Forward(pred, target).Item()
	if rmse != 1 {
		t.Errorf("RMSELoss = %v, want 1", rmse)
	}
}
