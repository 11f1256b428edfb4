package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/middleware"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/http/response"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/apierr"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/views"
)

const (
	videoFormField      = "file"
	msgInvalidVideo     = "Please select a valid video file."
	msgVideoTooLarge    = "Please choose a video under the upload size limit."
	msgInvalidChecklist = "Please complete the checklist."
)

type InhalerHandler struct {
	log            *logger.Logger
	inhaler        services.InhalerService
	maxUploadBytes int64
}

func NewInhalerHandler(log *logger.Logger, inhaler services.InhalerService, maxUploadBytes int64) *InhalerHandler {
	return &InhalerHandler{log: log.With("handler", "InhalerHandler"), inhaler: inhaler, maxUploadBytes: maxUploadBytes}
}

// POST /api/inhaler/video (multipart, field "file")
func (h *InhalerHandler) AnalyzeVideo(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fh, err := c.FormFile(videoFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(c, &apierr.Error{Status: http.StatusRequestEntityTooLarge, Code: "video_too_large", Message: msgVideoTooLarge, Err: err})
			return
		}
		response.RespondValidation(c, "invalid_video", msgInvalidVideo)
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !services.IsVideoContentType(contentType) {
		response.RespondValidation(c, "invalid_video", msgInvalidVideo)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.log.Warn("Opening uploaded video failed", "error", err)
		response.RespondValidation(c, "invalid_video", msgInvalidVideo)
		return
	}
	defer f.Close()

	a, err := h.inhaler.AnalyzeVideo(c.Request.Context(), services.VideoUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Body:        f,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, views.BuildTechniqueFeedback(middleware.AppState(c, views.TabTechnique), *a))
}

type checklistRequest struct {
	InhalerType string          `json:"inhaler_type"`
	Steps       map[string]bool `json:"steps"`
}

// POST /api/inhaler/checklist
func (h *InhalerHandler) AnalyzeChecklist(c *gin.Context) {
	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, "invalid_checklist", msgInvalidChecklist)
		return
	}
	a, err := h.inhaler.AnalyzeChecklist(c.Request.Context(), req.InhalerType, req.Steps)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, views.BuildTechniqueFeedback(middleware.AppState(c, views.TabTechnique), *a))
}

// GET /api/inhaler/demo
func (h *InhalerHandler) Demo(c *gin.Context) {
	a, err := h.inhaler.Demo(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, views.BuildTechniqueFeedback(middleware.AppState(c, views.TabTechnique), a))
}

// GET /api/inhaler?limit=N
func (h *InhalerHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, services.DefaultAssessmentList)
	if !ok {
		response.RespondValidation(c, "invalid_limit", "limit must be a positive number")
		return
	}
	list, err := h.inhaler.List(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, views.BuildAssessmentHistory(middleware.AppState(c, views.TabTechnique), list))
}
