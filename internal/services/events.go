package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a domain event to Kafka. Publishing is best effort:
// a nil writer or a broker failure never fails the originating operation.
func publishEvent(ctx context.Context, w KafkaWriter, eventType, subjectID, actorID string) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	evt := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		SubjectID: subjectID,
		ActorID:   actorID,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.SubjectID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "type", eventType, "error", err)
		return
	}

	logger.Log.Infow("event published to Kafka", "type", eventType, "subject_id", evt.SubjectID)
}
