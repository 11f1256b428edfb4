package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/ctxutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.Hub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{log: log.With("handler", "RealtimeHandler"), hub: hub}
}

// GET /api/events/stream
func (h *RealtimeHandler) Stream(c *gin.Context) {
	clientKey := ctxutil.GetClientKey(c.Request.Context())
	client := h.hub.NewClient(clientKey)
	h.hub.AddChannel(client, realtime.ActivityChannel)
	h.log.Debug("SSE stream open", "client_id", client.ID.String(), "client_key", clientKey)

	h.hub.ServeHTTP(c.Writer, c.Request, client)

	h.hub.CloseClient(client)
	h.log.Debug("SSE stream closed", "client_id", client.ID.String())
}
