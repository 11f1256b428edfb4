package bus

import (
	"context"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

// Sink receives published messages.
type Sink interface {
	Publish(ctx context.Context, msg realtime.Message) error
	Close() error
}

// Bus is a Sink that also delivers messages from every instance back to this one.
type Bus interface {
	Sink
	StartForwarder(ctx context.Context, onMsg func(m realtime.Message)) error
}
