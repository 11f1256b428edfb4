package realtime

import (
	"github.com/google/uuid"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type Client struct {
	ID        uuid.UUID
	ClientKey string
	Channels  map[string]bool
	Outbound  chan Message
	done      chan struct{}
	Logger    *logger.Logger
}
