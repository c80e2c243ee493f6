package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent builds a domain event with a fresh id and the current time.
func newEvent(eventType string, userID, subjectID int64) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		SubjectID: subjectID,
	}
}

// publishEvent publishes a domain event. Publishing is fire-and-forget:
// failures are logged and never fail the request that produced the event.
func publishEvent(ctx context.Context, writer EventWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}
