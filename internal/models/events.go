package models

import "time"

// Entities that emit lifecycle events
const (
	EntityCustomer = "customer"
	EntityItem     = "item"
	EntityOrder    = "order"
)

// Lifecycle actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// BaseEvent carries fields common to all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// EntityEvent is published after a customer, item or order is written.
// Payload holds a snapshot of the entity at write time (nil for deletes).
type EntityEvent struct {
	BaseEvent
	Entity   string      `json:"entity"`
	Action   string      `json:"action"`
	EntityID int64       `json:"entity_id"`
	Payload  interface{} `json:"payload,omitempty"`
}
