package app

import (
	"context"
	"fmt"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime/bus"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/services"
)

type eventWiring struct {
	emitter services.Emitter
	redis   bus.Bus
	kafka   bus.Sink
}

// wireEvents picks the fan-out path for activity events. With Redis every
// instance hears every event through the forwarder; without it the local hub is
// fed directly. Kafka is an additional outbound copy.
func wireEvents(ctx context.Context, log *logger.Logger, cfg Config, hub *realtime.Hub) (*eventWiring, error) {
	log.Info("Wiring event sinks...")
	w := &eventWiring{}
	var emitters services.MultiEmitter

	if cfg.RedisAddr != "" {
		b, err := bus.NewRedisBus(ctx, log, bus.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Channel:  cfg.RedisChannel,
		})
		if err != nil {
			return nil, fmt.Errorf("init redis event bus: %w", err)
		}
		w.redis = b
		emitters = append(emitters, &services.SinkEmitter{Name: "redis", Sink: b, Log: log})
	} else {
		emitters = append(emitters, &services.HubEmitter{Hub: hub})
	}

	if len(cfg.KafkaBrokers) > 0 {
		k, err := bus.NewKafkaSink(log, bus.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			w.close(log)
			return nil, fmt.Errorf("init kafka sink: %w", err)
		}
		w.kafka = k
		emitters = append(emitters, &services.SinkEmitter{Name: "kafka", Sink: k, Log: log})
	}

	w.emitter = emitters
	return w, nil
}

func (w *eventWiring) start(ctx context.Context, hub *realtime.Hub) error {
	if w == nil || w.redis == nil {
		return nil
	}
	if err := w.redis.StartForwarder(ctx, hub.Broadcast); err != nil {
		return fmt.Errorf("start redis forwarder: %w", err)
	}
	return nil
}

func (w *eventWiring) close(log *logger.Logger) {
	if w.redis != nil {
		if err := w.redis.Close(); err != nil {
			log.Warn("Closing redis bus failed", "error", err)
		}
	}
	if w.kafka != nil {
		if err := w.kafka.Close(); err != nil {
			log.Warn("Closing kafka sink failed", "error", err)
		}
	}
}
