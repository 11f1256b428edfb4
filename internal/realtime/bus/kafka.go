package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/realtime"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes domain events for downstream consumers. It never delivers back.
type KafkaSink struct {
	log    *logger.Logger
	writer messageWriter
	topic  string
}

func NewKafkaSink(log *logger.Logger, cfg KafkaConfig) (*KafkaSink, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("missing EVENTS_KAFKA_BROKERS")
	}
	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		topic = "aerosense-events"
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 2 * time.Second,
		MaxAttempts:  3,
	}
	return newKafkaSink(log, w, topic), nil
}

func newKafkaSink(log *logger.Logger, w messageWriter, topic string) *KafkaSink {
	return &KafkaSink{log: log.With("service", "KafkaEventSink"), writer: w, topic: topic}
}

// Publish keys every message by event name so one event type stays ordered within a partition.
func (k *KafkaSink) Publish(ctx context.Context, msg realtime.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.Event), Value: raw}); err != nil {
		return fmt.Errorf("kafka write %s: %w", k.topic, err)
	}
	return nil
}

func (k *KafkaSink) Close() error { return k.writer.Close() }
