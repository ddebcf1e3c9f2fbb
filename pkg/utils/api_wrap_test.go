package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondSuccess_IncludesTraceID(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("trace_id", "abc-123")

	RespondSuccess(c, gin.H{"k": "v"}, "done")

	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "abc-123", resp.TraceID)
	assert.Equal(t, "done", resp.Message)
}

func TestRespondSuccess_WithoutTraceMiddleware(t *testing.T) {
	c, w := newTestContext(t)

	RespondSuccess(c, nil, "done")

	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.TraceID)
}

func TestRespondError_SetsStatusAndBody(t *testing.T) {
	c, w := newTestContext(t)

	RespondError(c, http.StatusTeapot, "nope")

	assert.Equal(t, http.StatusTeapot, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, http.StatusTeapot, resp.Code)
	assert.Equal(t, "nope", resp.Message)
}

func TestHandleServiceError_InvalidMeasurement(t *testing.T) {
	c, w := newTestContext(t)

	HandleServiceError(c, fmt.Errorf("%w: age must be between 6 and 18 years", ErrInvalidMeasurement))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "age must be between")
}

func TestHandleServiceError_FeatureMismatch(t *testing.T) {
	c, w := newTestContext(t)

	HandleServiceError(c, fmt.Errorf("%w: missing feature \"WHR\"", ErrFeatureMismatch))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "Prediction failed")
}

func TestHandleServiceError_InferenceFailure(t *testing.T) {
	c, w := newTestContext(t)

	HandleServiceError(c, fmt.Errorf("%w: non-finite probability", ErrInferenceFailure))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "Prediction failed")
}

func TestHandleServiceError_Unknown(t *testing.T) {
	c, w := newTestContext(t)

	HandleServiceError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Internal server error", resp.Message)
}
