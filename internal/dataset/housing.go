// Package dataset loads and prepares the California housing data used by the
// regression demos.
//
// The raw data is a remotely hosted CSV of district-level housing attributes
// plus a median-house-value target. It is downloaded once into a local data
// directory and parsed into gonum matrices; ToTensor converts those into
// backend tensors for training.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// DefaultHousingURL is the canonical location of the California housing CSV.
const DefaultHousingURL = "https://raw.githubusercontent.com/ageron/handson-ml/master/datasets/housing/housing.csv"

// housingFeatures are the numeric attribute columns, in the order they appear
// in the feature matrix. The categorical ocean_proximity column is dropped.
var housingFeatures = []string{
	"longitude",
	"latitude",
	"housing_median_age",
	"total_rooms",
	"total_bedrooms",
	"population",
	"households",
	"median_income",
}

// housingTarget is the regression target column.
const housingTarget = "median_house_value"

// Housing holds the parsed dataset: an n×8 feature matrix and an n×1 target
// vector, with rows containing missing fields dropped.
type Housing struct {
	features *mat.Dense
	targets  *mat.Dense
	skipped  int
}

// LoadHousing fetches (if needed) and parses the California housing dataset.
//
// The CSV is cached as <dataDir>/housing.csv; subsequent calls parse the
// cached file without touching the network.
func LoadHousing(dataDir string) (*Housing, error) {
	return LoadHousingFrom(DefaultHousingURL, dataDir)
}

// LoadHousingFrom is LoadHousing with an explicit source URL.
func LoadHousingFrom(url, dataDir string) (*Housing, error) {
	path := filepath.Join(dataDir, "housing.csv")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := downloadFile(url, path); err != nil {
			return nil, fmt.Errorf("failed to download housing data: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return ParseHousingCSV(path)
}

// downloadFile fetches url into path, creating the parent directory.
func downloadFile(url, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// ParseHousingCSV parses a housing CSV file.
//
// The header row is required and columns are resolved by name, so column
// order does not matter. Rows with an empty feature or target field are
// skipped (the source data has districts with total_bedrooms missing);
// non-empty fields that fail to parse as numbers are an error.
func ParseHousingCSV(path string) (*Housing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file is empty or missing header")
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	indices := make([]int, 0, len(housingFeatures)+1)
	for _, name := range append(append([]string{}, housingFeatures...), housingTarget) {
		idx, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
		indices = append(indices, idx)
	}

	numFeatures := len(housingFeatures)
	features := make([]float64, 0, (len(records)-1)*numFeatures)
	targets := make([]float64, 0, len(records)-1)
	skipped := 0

rows:
	for rowNum, record := range records[1:] {
		values := make([]float64, len(indices))
		for i, idx := range indices {
			field := record[idx]
			if field == "" {
				skipped++
				continue rows
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q at row %d, column %q: %w",
					field, rowNum+2, header[idx], err)
			}
			values[i] = v
		}
		features = append(features, values[:numFeatures]...)
		targets = append(targets, values[numFeatures])
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no usable rows in %s", path)
	}

	return &Housing{
		features: mat.NewDense(len(targets), numFeatures, features),
		targets:  mat.NewDense(len(targets), 1, targets),
		skipped:  skipped,
	}, nil
}

// Features returns the n×8 feature matrix.
func (h *Housing) Features() *mat.Dense {
	return h.features
}

// Targets returns the n×1 target vector.
func (h *Housing) Targets() *mat.Dense {
	return h.targets
}

// NumSamples returns the number of usable rows.
func (h *Housing) NumSamples() int {
	n, _ := h.features.Dims()
	return n
}

// NumFeatures returns the number of feature columns.
func (h *Housing) NumFeatures() int {
	_, c := h.features.Dims()
	return c
}

// SkippedRows returns how many rows were dropped for missing fields.
func (h *Housing) SkippedRows() int {
	return h.skipped
}

// FeatureNames returns the feature column names in matrix order.
func (h *Housing) FeatureNames() []string {
	names := make([]string, len(housingFeatures))
	copy(names, housingFeatures)
	return names
}

// ToTensor copies a gonum matrix into a float64 tensor on the given backend.
func ToTensor[B tensor.Backend](m *mat.Dense, b B) *tensor.Tensor[float64, B] {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	t, err := tensor.FromSlice(data, tensor.Shape{rows, cols}, b)
	if err != nil {
		panic(fmt.Sprintf("dataset: tensor conversion failed: %v", err))
	}
	return t
}

// ToMatrix copies a 2D float64 tensor into a gonum matrix.
func ToMatrix[B tensor.Backend](t *tensor.Tensor[float64, B]) *mat.Dense {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("dataset: expected 2D tensor, got shape %v", shape))
	}

	data := make([]float64, shape.NumElements())
	copy(data, t.Data())
	return mat.NewDense(shape[0], shape[1], data)
}
