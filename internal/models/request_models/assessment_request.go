package request_models

// AssessmentRequest carries one child's measurements. Fields are pointers so
// that binding can tell a missing field from a legitimate zero (a rope-skip
// count of 0, gender code 0). Gender is 1 for boys and 0 for girls, rope
// skips are jumps per minute, circumferences are centimeters, reaction and
// sprint times are seconds.
type AssessmentRequest struct {
	Gender   *int     `json:"gender" form:"gender" binding:"required"`
	Age      *int     `json:"age" form:"age" binding:"required"`
	RopeSkip *int     `json:"rope_skip" form:"rope_skip" binding:"required"`
	Reaction *float64 `json:"reaction_time" form:"reaction_time" binding:"required"`
	Run50m   *float64 `json:"run_50m" form:"run_50m" binding:"required"`
	WaistCm  *float64 `json:"waist_cm" form:"waist_cm" binding:"required"`
	HipCm    *float64 `json:"hip_cm" form:"hip_cm" binding:"required"`
	ChestCm  *float64 `json:"chest_cm" form:"chest_cm" binding:"required"`
}
