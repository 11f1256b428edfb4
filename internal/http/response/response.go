package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes the envelope for err. Only the user-facing message leaves
// the process; err itself is kept on the context for the request log and metrics.
func RespondError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(apierr.StatusOf(err), ErrorEnvelope{
		Error: APIError{
			Message: apierr.UserMessage(err),
			Code:    apierr.CodeOf(err),
		},
	})
}

// RespondValidation is for input problems caught in the handler itself.
func RespondValidation(c *gin.Context, code, message string) {
	RespondError(c, apierr.Validation(code, message))
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
