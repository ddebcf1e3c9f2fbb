package infra

import (
	"fmt"
	"time"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/inference"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/config"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/logging"
)

// ModelAssets bundles the pre-trained artifacts the service evaluates with.
// All three are loaded once at startup and shared read-only afterwards.
type ModelAssets struct {
	Schema     *inference.FeatureSchema
	Scaler     inference.Scaler
	Classifier inference.Classifier
	LoadedAt   time.Time
}

// LoadAssets reads the trained column set, the fitted scaler and the
// classifier from the configured asset files, and verifies that the three
// agree on the feature count.
func LoadAssets(cfg *config.Config) (*ModelAssets, error) {
	schema, err := inference.LoadFeatureSchema(cfg.ColumnsPath())
	if err != nil {
		return nil, fmt.Errorf("load column set: %w", err)
	}

	scaler, err := inference.LoadScaler(cfg.ScalerPath())
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	classifier, err := inference.LoadClassifier(cfg.ModelPath())
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}

	if schema.Len() != scaler.Dim() || schema.Len() != classifier.NumFeatures() {
		return nil, fmt.Errorf("%w: column set has %d features, scaler %d, classifier %d",
			inference.ErrShapeMismatch, schema.Len(), scaler.Dim(), classifier.NumFeatures())
	}

	return &ModelAssets{
		Schema:     schema,
		Scaler:     scaler,
		Classifier: classifier,
		LoadedAt:   time.Now().UTC(),
	}, nil
}

// MustLoadAssets loads the artifacts and aborts the process when any of them
// is missing or inconsistent. The service cannot serve predictions without
// them, so there is nothing to degrade to.
func MustLoadAssets(cfg *config.Config) *ModelAssets {
	log := logging.GetLogger()

	assets, err := LoadAssets(cfg)
	if err != nil {
		log.Fatalf("Error loading model assets from %s: %v", cfg.AssetsDir, err)
	}

	log.Infof("Loaded %s classifier %s (%d features)",
		assets.Classifier.Kind(), assets.Classifier.Version(), assets.Classifier.NumFeatures())
	return assets
}
