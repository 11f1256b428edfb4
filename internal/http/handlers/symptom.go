package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

type SymptomHandler struct {
	log      *logger.Logger
	symptoms services.SymptomService
}

func NewSymptomHandler(log *logger.Logger, symptoms services.SymptomService) *SymptomHandler {
	return &SymptomHandler{log: log.With("handler", "SymptomHandler"), symptoms: symptoms}
}

// Either field is accepted; the page-router front-end posts description.
type analyzeSymptomsRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

// POST /api/symptoms/analyze
func (h *SymptomHandler) Analyze(c *gin.Context) {
	var req analyzeSymptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, "invalid_request", "Please describe your symptoms.")
		return
	}
	text := req.Text
	if text == "" {
		text = req.Description
	}
	entry, err := h.symptoms.Analyze(c.Request.Context(), text)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, views.BuildSymptomResult(middleware.AppState(c, views.TabSymptoms), *entry))
}

// GET /api/symptoms?limit=N
func (h *SymptomHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, services.DefaultSymptomLimit)
	if !ok {
		response.RespondValidation(c, "invalid_limit", "limit must be a positive number")
		return
	}
	entries, err := h.symptoms.List(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, views.BuildSymptomList(middleware.AppState(c, views.TabSymptoms), entries))
}
