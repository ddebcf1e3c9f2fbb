// Package inference evaluates the pre-trained obesity classifier over a
// fixed-order feature vector. The classifier and its feature scaler are
// opaque artifacts produced by the training pipeline; this package only
// loads and applies them.
package inference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Canonical feature names used during feature assembly. They must match the
// header row of the reference CSV the artifacts were trained against:
// Age, RopeSkip, Reaction, Run50m, HC, Gender, WC, WHR, CC.
const (
	FeatureAge      = "Age"
	FeatureRopeSkip = "RopeSkip"
	FeatureReaction = "Reaction"
	FeatureRun50m   = "Run50m"
	FeatureHC       = "HC"
	FeatureGender   = "Gender"
	FeatureWC       = "WC"
	FeatureWHR      = "WHR"
	FeatureCC       = "CC"
)

// ErrShapeMismatch flags any disagreement between an input row and the shape
// the trained artifacts expect. The column order and the scaler/model pairing
// must stay consistent; a mismatch aborts the submission it belongs to.
var ErrShapeMismatch = errors.New("shape mismatch between input and trained artifacts")

// FeatureSchema fixes the column order the scaler/classifier pair was
// trained with.
type FeatureSchema struct {
	names []string
	index map[string]int
}

// NewFeatureSchema builds a schema from an ordered column list.
func NewFeatureSchema(names []string) (*FeatureSchema, error) {
	if len(names) == 0 {
		return nil, errors.New("schema: empty column list")
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("schema: empty column name at position %d", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("schema: duplicate column %q", name)
		}
		index[name] = i
	}
	return &FeatureSchema{names: append([]string(nil), names...), index: index}, nil
}

// LoadFeatureSchema reads the header row of the reference CSV. Only the
// header matters; any data rows are ignored.
func LoadFeatureSchema(path string) (*FeatureSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: open %s: %w", path, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("schema: read header of %s: %w", path, err)
	}
	return NewFeatureSchema(header)
}

// Names returns the column order as a copy.
func (s *FeatureSchema) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of columns.
func (s *FeatureSchema) Len() int {
	return len(s.names)
}

// Assemble lays the named features out as a single row in schema order,
// regardless of how the map was populated. A feature the schema expects but
// the map lacks is a shape error; names the schema does not know are
// ignored, matching the reindex semantics the model was trained under.
func (s *FeatureSchema) Assemble(features map[string]float64) ([]float64, error) {
	row := make([]float64, len(s.names))
	for i, name := range s.names {
		v, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing feature %q", ErrShapeMismatch, name)
		}
		row[i] = v
	}
	return row, nil
}
