package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/request_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/services"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/utils"
)

type AssessmentController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(assessmentService services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// CreateAssessment godoc
// @Summary Score one child's measurements
// @Description Runs the pre-trained classifier over the submitted measurements and returns the obesity risk with screening findings
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body request_models.AssessmentRequest true "Measurement payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /assessments [post]
func (a *AssessmentController) CreateAssessment(c *gin.Context) {
	var req request_models.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.assessmentService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Assessment completed successfully")
}

// GetModelInfo godoc
// @Summary Describe the loaded model
// @Description Returns the classifier kind, version and the feature order it was trained on
// @Tags Assessments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /model [get]
func (a *AssessmentController) GetModelInfo(c *gin.Context) {
	utils.RespondSuccess(c, a.assessmentService.ModelInfo(), "Model info fetched successfully")
}
