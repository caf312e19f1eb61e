package broker

import (
	"context"
	"fmt"
	"time"

	"order-store/internal/models"

	"github.com/google/uuid"
)

// EventPublisher publishes entity lifecycle events. A nil *EventPublisher
// is valid and drops events, so callers need no enabled checks.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishEntityEvent publishes one lifecycle event for an entity write.
// Payload is a snapshot of the entity after the write (nil for deletes).
func (ep *EventPublisher) PublishEntityEvent(ctx context.Context, entity, action string, entityID int64, payload interface{}) error {
	if ep == nil || ep.producer == nil {
		return nil
	}

	event := newEntityEvent(entity, action, entityID, payload)
	key := fmt.Sprintf("%s-%d", entity, entityID)
	return ep.producer.PublishEvent(ctx, key, event)
}

func newEntityEvent(entity, action string, entityID int64, payload interface{}) *models.EntityEvent {
	return &models.EntityEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: fmt.Sprintf("%s.%s", entity, action),
			Timestamp: time.Now(),
		},
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		Payload:  payload,
	}
}
