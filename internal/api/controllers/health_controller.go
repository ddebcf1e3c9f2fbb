package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/response_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/services"
)

type HealthController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewHealthController(assessmentService services.AssessmentServiceInterface) *HealthController {
	return &HealthController{
		assessmentService: assessmentService,
	}
}

// Health reports liveness. The model is loaded before the server starts, so
// a running process always answers ok.
func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status:       "ok",
		ModelVersion: h.assessmentService.ModelInfo().Version,
	})
}
