package response_models

import "time"

// Finding is one advisory raised by a measurement crossing its screening
// threshold.
type Finding struct {
	Code      string  `json:"code"` // "waist", "whr", "rope_skip", "run_50m"
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

type AssessmentResponse struct {
	RiskProbability float64   `json:"risk_probability"` // classifier output in [0, 1]
	RiskPercent     string    `json:"risk_percent"`     // "38.2%"
	HighRisk        bool      `json:"high_risk"`
	RiskLevel       string    `json:"risk_level"` // "high" or "low"
	WaistHipRatio   float64   `json:"waist_hip_ratio"`
	Findings        []Finding `json:"findings"`
	Guidance        string    `json:"guidance,omitempty"`
	ModelVersion    string    `json:"model_version"`
	EvaluatedAt     time.Time `json:"evaluated_at"`
}

type ModelInfoResponse struct {
	Kind        string    `json:"kind"`
	Version     string    `json:"version"`
	NumFeatures int       `json:"num_features"`
	Features    []string  `json:"features"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"model_version"`
}
