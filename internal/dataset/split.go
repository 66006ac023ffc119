package dataset

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Split partitions paired feature/target rows into train and test sets.
//
// Rows are shuffled with a seeded permutation before the cut, so the same
// seed always yields the same partition and x/y rows stay paired. The test
// set receives round(n * testFraction) rows and the rest go to training.
func Split(x, y *mat.Dense, testFraction float64, seed int64) (xTrain, yTrain, xTest, yTest *mat.Dense, err error) {
	n, _ := x.Dims()
	yRows, _ := y.Dims()
	if n != yRows {
		return nil, nil, nil, nil, fmt.Errorf("row count mismatch: x has %d, y has %d", n, yRows)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFraction)
	}

	numTest := int(float64(n)*testFraction + 0.5)
	if numTest == 0 {
		numTest = 1
	}
	if numTest == n {
		numTest = n - 1
	}
	numTrain := n - numTest
	if numTrain == 0 {
		return nil, nil, nil, nil, fmt.Errorf("not enough rows to split: %d", n)
	}

	//nolint:gosec // G404: reproducible data shuffling, not security
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	xTrain = gatherRows(x, perm[:numTrain])
	yTrain = gatherRows(y, perm[:numTrain])
	xTest = gatherRows(x, perm[numTrain:])
	yTest = gatherRows(y, perm[numTrain:])
	return xTrain, yTrain, xTest, yTest, nil
}

// gatherRows copies the selected rows of m, in index order, into a new matrix.
func gatherRows(m *mat.Dense, indices []int) *mat.Dense {
	_, cols := m.Dims()
	data := make([]float64, 0, len(indices)*cols)
	for _, idx := range indices {
		data = append(data, m.RawRowView(idx)...)
	}
	return mat.NewDense(len(indices), cols, data)
}
