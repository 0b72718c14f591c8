package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeAppended EventType = "appended"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeHolder        EntityType = "holder"
	EntityTypeSaving        EntityType = "saving"
	EntityTypeOperation     EntityType = "operation"
	EntityTypeBudgetElement EntityType = "budget_element"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "saving.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "saving"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// HolderCreated creates a holder.created event
func HolderCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeHolder, payload)
}

// HolderUpdated creates a holder.updated event
func HolderUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeHolder, payload)
}

// HolderDeleted creates a holder.deleted event
func HolderDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeHolder, payload)
}

// SavingCreated creates a saving.created event
func SavingCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeSaving, payload)
}

// SavingUpdated creates a saving.updated event
func SavingUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSaving, payload)
}

// SavingDeleted creates a saving.deleted event
func SavingDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeSaving, payload)
}

// OperationAppended creates an operation.appended event
func OperationAppended(payload interface{}) Event {
	return NewEvent(EventTypeAppended, EntityTypeOperation, payload)
}

// BudgetElementCreated creates a budget_element.created event
func BudgetElementCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeBudgetElement, payload)
}

// BudgetElementUpdated creates a budget_element.updated event
func BudgetElementUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeBudgetElement, payload)
}

// BudgetElementDeleted creates a budget_element.deleted event
func BudgetElementDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeBudgetElement, payload)
}
