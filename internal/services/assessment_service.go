package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/inference"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/request_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/response_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/logging"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/utils"
)

// Accepted measurement ranges. Submissions outside them are rejected before
// any inference runs.
const (
	AgeMin, AgeMax             = 6, 18
	RopeSkipMin, RopeSkipMax   = 0, 300
	WaistMinCm, WaistMaxCm     = 40.0, 120.0
	HipMinCm, HipMaxCm         = 40.0, 130.0
	ChestMinCm, ChestMaxCm     = 40.0, 120.0
	ReactionMinS, ReactionMaxS = 0.0, 5.0
	Run50mMinS, Run50mMaxS     = 5.0, 20.0
)

// Screening thresholds behind the risk flag and the advisory findings.
const (
	HighRiskCutoff   = 0.5
	WaistAdvisoryCm  = 80.0
	WHRAdvisory      = 0.9
	RopeSkipAdvisory = 100
	Run50mAdvisoryS  = 10.0
)

const interventionGuidance = "Add at least 30 minutes of moderate-to-vigorous exercise a day, " +
	"such as rope skipping or swimming, and limit high-sugar foods and drinks."

type AssessmentServiceInterface interface {
	Evaluate(ctx context.Context, req *request_models.AssessmentRequest) (*response_models.AssessmentResponse, error)
	ModelInfo() response_models.ModelInfoResponse
}

type AssessmentService struct {
	schema     *inference.FeatureSchema
	scaler     inference.Scaler
	classifier inference.Classifier
	loadedAt   time.Time
}

func NewAssessmentService(
	schema *inference.FeatureSchema,
	scaler inference.Scaler,
	classifier inference.Classifier,
	loadedAt time.Time,
) AssessmentServiceInterface {
	return &AssessmentService{
		schema:     schema,
		scaler:     scaler,
		classifier: classifier,
		loadedAt:   loadedAt,
	}
}

func (s *AssessmentService) Evaluate(ctx context.Context, req *request_models.AssessmentRequest) (*response_models.AssessmentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	gender := *req.Gender
	age := *req.Age
	ropeSkip := *req.RopeSkip
	reaction := *req.Reaction
	run50m := *req.Run50m
	waist := *req.WaistCm
	hip := *req.HipCm
	chest := *req.ChestCm

	whr := waistHipRatio(waist, hip)

	row, err := s.schema.Assemble(map[string]float64{
		inference.FeatureAge:      float64(age),
		inference.FeatureRopeSkip: float64(ropeSkip),
		inference.FeatureReaction: reaction,
		inference.FeatureRun50m:   run50m,
		inference.FeatureHC:       hip,
		inference.FeatureGender:   float64(gender),
		inference.FeatureWC:       waist,
		inference.FeatureWHR:      whr,
		inference.FeatureCC:       chest,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrFeatureMismatch, err)
	}

	scaled, err := s.scaler.Transform(row)
	if err != nil {
		return nil, wrapInferenceError(err)
	}

	prob, err := s.classifier.PredictProba(scaled)
	if err != nil {
		return nil, wrapInferenceError(err)
	}

	highRisk := prob > HighRiskCutoff
	findings := collectFindings(waist, whr, ropeSkip, run50m)

	logging.GetLogger().Debugf("assessment evaluated: probability=%.4f high_risk=%v findings=%d",
		prob, highRisk, len(findings))

	resp := &response_models.AssessmentResponse{
		RiskProbability: prob,
		RiskPercent:     fmt.Sprintf("%.1f%%", prob*100),
		HighRisk:        highRisk,
		RiskLevel:       riskLevel(highRisk),
		WaistHipRatio:   whr,
		Findings:        findings,
		ModelVersion:    s.classifier.Version(),
		EvaluatedAt:     time.Now().UTC(),
	}
	if len(findings) > 0 {
		resp.Guidance = interventionGuidance
	}

	return resp, nil
}

func (s *AssessmentService) ModelInfo() response_models.ModelInfoResponse {
	return response_models.ModelInfoResponse{
		Kind:        s.classifier.Kind(),
		Version:     s.classifier.Version(),
		NumFeatures: s.classifier.NumFeatures(),
		Features:    s.schema.Names(),
		LoadedAt:    s.loadedAt,
	}
}

// waistHipRatio derives WHR from the raw measurements, defined as 0 when the
// hip value is 0 so the derivation never divides by zero.
func waistHipRatio(waist, hip float64) float64 {
	if hip == 0 {
		return 0
	}
	return waist / hip
}

func riskLevel(highRisk bool) string {
	if highRisk {
		return "high"
	}
	return "low"
}

// collectFindings applies the screening rules the tool explains results with.
// Each rule is independent of the others and of the classifier output.
func collectFindings(waist, whr float64, ropeSkip int, run50m float64) []response_models.Finding {
	findings := make([]response_models.Finding, 0, 4)

	if waist > WaistAdvisoryCm {
		findings = append(findings, response_models.Finding{
			Code:      "waist",
			Message:   fmt.Sprintf("Waist circumference (%.1f cm) is markedly high, the main marker of central obesity.", waist),
			Value:     waist,
			Threshold: WaistAdvisoryCm,
		})
	}
	if whr > WHRAdvisory {
		findings = append(findings, response_models.Finding{
			Code:      "whr",
			Message:   fmt.Sprintf("Waist-to-hip ratio (%.2f) is above the screening limit, suggesting abdominal fat build-up.", whr),
			Value:     whr,
			Threshold: WHRAdvisory,
		})
	}
	if ropeSkip < RopeSkipAdvisory {
		findings = append(findings, response_models.Finding{
			Code:      "rope_skip",
			Message:   fmt.Sprintf("Rope-skip score (%d per minute) is low; cardio endurance training is recommended.", ropeSkip),
			Value:     float64(ropeSkip),
			Threshold: RopeSkipAdvisory,
		})
	}
	if run50m > Run50mAdvisoryS {
		findings = append(findings, response_models.Finding{
			Code:      "run_50m",
			Message:   fmt.Sprintf("50 m sprint (%.1f s) is slow, pointing to weak explosive strength.", run50m),
			Value:     run50m,
			Threshold: Run50mAdvisoryS,
		})
	}

	return findings
}

func wrapInferenceError(err error) error {
	if errors.Is(err, inference.ErrShapeMismatch) {
		return fmt.Errorf("%w: %v", utils.ErrFeatureMismatch, err)
	}
	return fmt.Errorf("%w: %v", utils.ErrInferenceFailure, err)
}

func validateRequest(req *request_models.AssessmentRequest) error {
	if req == nil || req.Gender == nil || req.Age == nil || req.RopeSkip == nil ||
		req.Reaction == nil || req.Run50m == nil ||
		req.WaistCm == nil || req.HipCm == nil || req.ChestCm == nil {
		return fmt.Errorf("%w: all measurements are required", utils.ErrInvalidMeasurement)
	}

	if g := *req.Gender; g != 0 && g != 1 {
		return fmt.Errorf("%w: gender must be 0 (girl) or 1 (boy)", utils.ErrInvalidMeasurement)
	}
	if a := *req.Age; a < AgeMin || a > AgeMax {
		return fmt.Errorf("%w: age must be between %d and %d years", utils.ErrInvalidMeasurement, AgeMin, AgeMax)
	}
	if r := *req.RopeSkip; r < RopeSkipMin || r > RopeSkipMax {
		return fmt.Errorf("%w: rope skip must be between %d and %d per minute", utils.ErrInvalidMeasurement, RopeSkipMin, RopeSkipMax)
	}
	if r := *req.Reaction; r < ReactionMinS || r > ReactionMaxS {
		return fmt.Errorf("%w: reaction time must be between %.1f and %.1f seconds", utils.ErrInvalidMeasurement, ReactionMinS, ReactionMaxS)
	}
	if r := *req.Run50m; r < Run50mMinS || r > Run50mMaxS {
		return fmt.Errorf("%w: 50 m time must be between %.1f and %.1f seconds", utils.ErrInvalidMeasurement, Run50mMinS, Run50mMaxS)
	}
	if w := *req.WaistCm; w < WaistMinCm || w > WaistMaxCm {
		return fmt.Errorf("%w: waist must be between %.0f and %.0f cm", utils.ErrInvalidMeasurement, WaistMinCm, WaistMaxCm)
	}
	if h := *req.HipCm; h < HipMinCm || h > HipMaxCm {
		return fmt.Errorf("%w: hip must be between %.0f and %.0f cm", utils.ErrInvalidMeasurement, HipMinCm, HipMaxCm)
	}
	if c := *req.ChestCm; c < ChestMinCm || c > ChestMaxCm {
		return fmt.Errorf("%w: chest must be between %.0f and %.0f cm", utils.ErrInvalidMeasurement, ChestMinCm, ChestMaxCm)
	}

	return nil
}
