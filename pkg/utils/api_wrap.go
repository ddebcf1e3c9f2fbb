package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/logging"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-level errors onto HTTP responses. Range
// violations are the caller's fault; errors from the inference path fail only
// the request that triggered them, never the loaded model.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidMeasurement):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrFeatureMismatch):
		logging.GetLogger().Errorf("feature mismatch: %v", err)
		RespondError(c, http.StatusInternalServerError, "Prediction failed: "+err.Error())
	case errors.Is(err, ErrInferenceFailure):
		logging.GetLogger().Errorf("inference failure: %v", err)
		RespondError(c, http.StatusInternalServerError, "Prediction failed: "+err.Error())
	default:
		logging.GetLogger().Errorf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
