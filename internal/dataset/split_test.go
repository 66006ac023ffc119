package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Machine-Learning-S25/WK12/internal/dataset"
)

// pairedData builds x with rows [i, 2i] and y with rows [10i], so row pairing
// survives any shuffle check.
func pairedData(n int) (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, float64(2*i))
		y.Set(i, 0, float64(10*i))
	}
	return x, y
}

func TestSplit_Sizes(t *testing.T) {
	x, y := pairedData(10)

	xTrain, yTrain, xTest, yTest, err := dataset.Split(x, y, 0.2, 42)
	require.NoError(t, err)

	trainRows, _ := xTrain.Dims()
	testRows, _ := xTest.Dims()
	assert.Equal(t, 8, trainRows)
	assert.Equal(t, 2, testRows)

	yTrainRows, _ := yTrain.Dims()
	yTestRows, _ := yTest.Dims()
	assert.Equal(t, 8, yTrainRows)
	assert.Equal(t, 2, yTestRows)
}

func TestSplit_Deterministic(t *testing.T) {
	x, y := pairedData(50)

	a1, b1, c1, d1, err := dataset.Split(x, y, 0.2, 7)
	require.NoError(t, err)
	a2, b2, c2, d2, err := dataset.Split(x, y, 0.2, 7)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a1, a2))
	assert.True(t, mat.Equal(b1, b2))
	assert.True(t, mat.Equal(c1, c2))
	assert.True(t, mat.Equal(d1, d2))
}

func TestSplit_SeedChangesOrder(t *testing.T) {
	x, y := pairedData(100)

	a1, _, _, _, err := dataset.Split(x, y, 0.2, 1)
	require.NoError(t, err)
	a2, _, _, _, err := dataset.Split(x, y, 0.2, 2)
	require.NoError(t, err)

	assert.False(t, mat.Equal(a1, a2))
}

func TestSplit_RowsStayPaired(t *testing.T) {
	x, y := pairedData(40)

	xTrain, yTrain, xTest, yTest, err := dataset.Split(x, y, 0.25, 3)
	require.NoError(t, err)

	checkPairs := func(xs, ys *mat.Dense) {
		rows, _ := xs.Dims()
		for i := 0; i < rows; i++ {
			assert.Equal(t, 2*xs.At(i, 0), xs.At(i, 1))
			assert.Equal(t, 10*xs.At(i, 0), ys.At(i, 0))
		}
	}
	checkPairs(xTrain, yTrain)
	checkPairs(xTest, yTest)
}

func TestSplit_PartitionIsComplete(t *testing.T) {
	x, y := pairedData(30)

	xTrain, _, xTest, _, err := dataset.Split(x, y, 0.2, 11)
	require.NoError(t, err)

	seen := make(map[float64]int)
	collect := func(m *mat.Dense) {
		rows, _ := m.Dims()
		for i := 0; i < rows; i++ {
			seen[m.At(i, 0)]++
		}
	}
	collect(xTrain)
	collect(xTest)

	require.Len(t, seen, 30)
	for i := 0; i < 30; i++ {
		assert.Equal(t, 1, seen[float64(i)], "row %d", i)
	}
}

func TestSplit_TinyDataset(t *testing.T) {
	x, y := pairedData(2)

	xTrain, _, xTest, _, err := dataset.Split(x, y, 0.2, 5)
	require.NoError(t, err)

	trainRows, _ := xTrain.Dims()
	testRows, _ := xTest.Dims()
	assert.Equal(t, 1, trainRows)
	assert.Equal(t, 1, testRows)
}

func TestSplit_Errors(t *testing.T) {
	x, y := pairedData(10)
	short := mat.NewDense(5, 1, nil)

	_, _, _, _, err := dataset.Split(x, short, 0.2, 1)
	assert.Error(t, err)

	_, _, _, _, err = dataset.Split(x, y, 0, 1)
	assert.Error(t, err)

	_, _, _, _, err = dataset.Split(x, y, 1, 1)
	assert.Error(t, err)

	_, _, _, _, err = dataset.Split(x, y, 1.5, 1)
	assert.Error(t, err)
}
