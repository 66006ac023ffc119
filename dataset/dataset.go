// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the housing dataset loader, the train/test
// split, and the standardizing scaler.
//
// Example:
//
//	housing, err := dataset.LoadHousing("data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xTrain, yTrain, xTest, yTest, err := dataset.Split(
//	    housing.Features(), housing.Targets(), 0.2, 42)
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Machine-Learning-S25/WK12/internal/dataset"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Housing holds the parsed housing dataset: one row per district, numeric
// attributes plus the median house value target.
type Housing = dataset.Housing

// LoadHousing downloads the housing CSV into dataDir (once; later calls
// reuse the cached file) and parses it.
func LoadHousing(dataDir string) (*Housing, error) {
	return dataset.LoadHousing(dataDir)
}

// LoadHousingFrom is LoadHousing with an explicit source URL.
func LoadHousingFrom(url, dataDir string) (*Housing, error) {
	return dataset.LoadHousingFrom(url, dataDir)
}

// ParseHousingCSV parses an already-downloaded housing CSV file.
func ParseHousingCSV(path string) (*Housing, error) {
	return dataset.ParseHousingCSV(path)
}

// Split shuffles rows with the given seed and partitions x and y into
// train and test sets, the test set holding testFraction of the rows.
func Split(x, y *mat.Dense, testFraction float64, seed int64) (xTrain, yTrain, xTest, yTest *mat.Dense, err error) {
	return dataset.Split(x, y, testFraction, seed)
}

// StandardScaler standardizes each column to zero mean and unit variance
// and can invert the transform to recover original units.
type StandardScaler = dataset.StandardScaler

// NewStandardScaler creates an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return dataset.NewStandardScaler()
}

// ToTensor copies a gonum matrix into a float64 tensor on backend b.
func ToTensor[B tensor.Backend](m *mat.Dense, b B) *tensor.Tensor[float64, B] {
	return dataset.ToTensor(m, b)
}

// ToMatrix copies a 2D float64 tensor into a gonum matrix.
func ToMatrix[B tensor.Backend](t *tensor.Tensor[float64, B]) *mat.Dense {
	return dataset.ToMatrix(t)
}
