package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// ClassifierFormatV1 identifies the serialized classifier layout this build
// can read.
const ClassifierFormatV1 = "obesity-classifier/v1"

// Supported classifier kinds.
const (
	KindLogistic = "logistic"
	KindStacked  = "stacked_logistic"
)

// Classifier produces the positive-class probability for a scaled feature
// row. Implementations are read-only after construction and safe to share.
type Classifier interface {
	// PredictProba returns the obesity-class probability, always in [0, 1].
	PredictProba(row []float64) (float64, error)

	// NumFeatures returns the width of the rows the classifier expects.
	NumFeatures() int

	// Kind returns the classifier family name.
	Kind() string

	// Version returns the artifact version string.
	Version() string
}

// linearModel is a single logistic unit over its input vector.
type linearModel struct {
	weights   []float64
	intercept float64
}

func (m linearModel) proba(row []float64) float64 {
	return sigmoid(floats.Dot(m.weights, row) + m.intercept)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// LogisticClassifier is a plain logistic regression over the scaled features.
type LogisticClassifier struct {
	model   linearModel
	version string
}

// NewLogisticClassifier builds a logistic classifier from fitted parameters.
func NewLogisticClassifier(weights []float64, intercept float64, version string) (*LogisticClassifier, error) {
	if len(weights) == 0 {
		return nil, errors.New("classifier: empty weight vector")
	}
	return &LogisticClassifier{
		model:   linearModel{weights: append([]float64(nil), weights...), intercept: intercept},
		version: version,
	}, nil
}

func (c *LogisticClassifier) PredictProba(row []float64) (float64, error) {
	if len(row) != len(c.model.weights) {
		return 0, fmt.Errorf("%w: classifier trained on %d features, got %d", ErrShapeMismatch, len(c.model.weights), len(row))
	}
	return finiteProba(c.model.proba(row))
}

func (c *LogisticClassifier) NumFeatures() int { return len(c.model.weights) }
func (c *LogisticClassifier) Kind() string     { return KindLogistic }
func (c *LogisticClassifier) Version() string  { return c.version }

// StackedClassifier mirrors the stacking ensemble exported by the training
// pipeline: each base unit scores the scaled features, and the meta unit
// folds those probabilities into the final one.
type StackedClassifier struct {
	base    []linearModel
	meta    linearModel
	version string
}

func (c *StackedClassifier) PredictProba(row []float64) (float64, error) {
	if len(row) != c.NumFeatures() {
		return 0, fmt.Errorf("%w: classifier trained on %d features, got %d", ErrShapeMismatch, c.NumFeatures(), len(row))
	}
	metaIn := make([]float64, len(c.base))
	for i, b := range c.base {
		metaIn[i] = b.proba(row)
	}
	return finiteProba(c.meta.proba(metaIn))
}

func (c *StackedClassifier) NumFeatures() int { return len(c.base[0].weights) }
func (c *StackedClassifier) Kind() string     { return KindStacked }
func (c *StackedClassifier) Version() string  { return c.version }

func finiteProba(p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("classifier: non-finite probability %v", p)
	}
	return p, nil
}

type linearModelFile struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

type classifierFile struct {
	Format     string            `json:"format"`
	Version    string            `json:"version"`
	Kind       string            `json:"kind"`
	Model      *linearModelFile  `json:"model,omitempty"`
	BaseModels []linearModelFile `json:"base_models,omitempty"`
	MetaModel  *linearModelFile  `json:"meta_model,omitempty"`
}

// LoadClassifier reads a serialized classifier from disk and builds the
// matching evaluator for its kind.
func LoadClassifier(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read %s: %w", path, err)
	}

	var cf classifierFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("classifier: parse %s: %w", path, err)
	}
	if cf.Format != ClassifierFormatV1 {
		return nil, fmt.Errorf("classifier: unsupported format %q in %s", cf.Format, path)
	}

	switch cf.Kind {
	case KindLogistic:
		if cf.Model == nil {
			return nil, fmt.Errorf("classifier: kind %q requires a model block", cf.Kind)
		}
		clf, err := NewLogisticClassifier(cf.Model.Weights, cf.Model.Intercept, cf.Version)
		if err != nil {
			return nil, fmt.Errorf("classifier: %s: %w", path, err)
		}
		return clf, nil
	case KindStacked:
		clf, err := newStackedClassifier(cf)
		if err != nil {
			return nil, fmt.Errorf("classifier: %s: %w", path, err)
		}
		return clf, nil
	default:
		return nil, fmt.Errorf("classifier: unsupported kind %q in %s", cf.Kind, path)
	}
}

func newStackedClassifier(cf classifierFile) (*StackedClassifier, error) {
	if len(cf.BaseModels) == 0 {
		return nil, errors.New("stacked classifier requires base models")
	}
	if cf.MetaModel == nil {
		return nil, errors.New("stacked classifier requires a meta model")
	}
	if len(cf.MetaModel.Weights) != len(cf.BaseModels) {
		return nil, fmt.Errorf("meta model has %d weights for %d base models",
			len(cf.MetaModel.Weights), len(cf.BaseModels))
	}

	width := len(cf.BaseModels[0].Weights)
	if width == 0 {
		return nil, errors.New("stacked classifier base model has no weights")
	}

	base := make([]linearModel, len(cf.BaseModels))
	for i, bm := range cf.BaseModels {
		if len(bm.Weights) != width {
			return nil, fmt.Errorf("base model %d has %d weights, expected %d", i, len(bm.Weights), width)
		}
		base[i] = linearModel{weights: append([]float64(nil), bm.Weights...), intercept: bm.Intercept}
	}

	return &StackedClassifier{
		base: base,
		meta: linearModel{
			weights:   append([]float64(nil), cf.MetaModel.Weights...),
			intercept: cf.MetaModel.Intercept,
		},
		version: cf.Version,
	}, nil
}
