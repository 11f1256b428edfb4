package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRespondErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondError(c, apierr.Upstream("risk_failed", "Unable to calculate risk. Please try again.", errors.New("dial tcp: refused")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Unable to calculate risk. Please try again.", env.Error.Message)
	assert.Equal(t, "risk_failed", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestRespondErrorPlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "internal_error", env.Error.Code)
	assert.Equal(t, "Something went wrong. Please try again.", env.Error.Message)
}

func TestRespondValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondValidation(c, "invalid_days", "days must be a number")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "days must be a number", decode(t, rec).Error.Message)
}
