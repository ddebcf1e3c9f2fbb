package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// ScalerFormatV1 identifies the serialized standard-scaler layout this
// build can read.
const ScalerFormatV1 = "standard-scaler/v1"

// Scaler normalizes an assembled feature row before classification.
type Scaler interface {
	// Transform returns the scaled copy of row.
	Transform(row []float64) ([]float64, error)

	// Dim returns the number of features the scaler was fitted on.
	Dim() int
}

// StandardScaler applies the usual (x - mean) / scale transform with the
// parameter vectors exported by the training pipeline.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler builds a scaler from fitted parameter vectors. Zero
// entries in scale are treated as one so constant columns pass through
// centered, matching the training toolchain's convention.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, errors.New("scaler: empty mean vector")
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("scaler: mean has %d entries, scale has %d", len(mean), len(scale))
	}
	s := &StandardScaler{
		mean:  append([]float64(nil), mean...),
		scale: append([]float64(nil), scale...),
	}
	for i, v := range s.scale {
		if v == 0 {
			s.scale[i] = 1
		}
	}
	return s, nil
}

// Dim returns the number of features the scaler was fitted on.
func (s *StandardScaler) Dim() int {
	return len(s.mean)
}

// Transform returns the scaled copy of row.
func (s *StandardScaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.mean) {
		return nil, fmt.Errorf("%w: scaler fitted on %d features, got %d", ErrShapeMismatch, len(s.mean), len(row))
	}
	out := make([]float64, len(row))
	floats.SubTo(out, row, s.mean)
	floats.DivTo(out, out, s.scale)
	return out, nil
}

type scalerFile struct {
	Format string    `json:"format"`
	Mean   []float64 `json:"mean"`
	Scale  []float64 `json:"scale"`
}

// LoadScaler reads a serialized feature scaler from disk.
func LoadScaler(path string) (Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scaler: read %s: %w", path, err)
	}

	var sf scalerFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("scaler: parse %s: %w", path, err)
	}
	if sf.Format != ScalerFormatV1 {
		return nil, fmt.Errorf("scaler: unsupported format %q in %s", sf.Format, path)
	}

	scaler, err := NewStandardScaler(sf.Mean, sf.Scale)
	if err != nil {
		return nil, fmt.Errorf("scaler: %s: %w", path, err)
	}
	return scaler, nil
}
