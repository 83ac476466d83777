// Package events defines the domain event contracts and the in-memory
// dispatcher used for post-commit notification fan-out. Events are published
// only after the transaction that produced them commits; publishing is
// non-blocking and a failed or dropped delivery never affects the committed
// workflow.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents a domain event.
type DomainEvent interface {
	// GetEventID returns the unique ID of this event instance.
	GetEventID() string

	// GetAggregateID returns the ID of the aggregate that generated the event.
	GetAggregateID() string

	// GetEventType returns the type/name of the event.
	GetEventType() string

	// GetOccurredAt returns when the event occurred.
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events.
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBaseEvent builds the common event envelope with a fresh event ID.
func NewBaseEvent(eventType, aggregateID string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
	}
}

// GetEventID returns the unique event instance ID.
func (e BaseEvent) GetEventID() string {
	return e.EventID
}

// GetAggregateID returns the aggregate ID.
func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

// GetEventType returns the event type.
func (e BaseEvent) GetEventType() string {
	return e.EventType
}

// GetOccurredAt returns when the event occurred.
func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

// EventHandler represents a handler for domain events.
type EventHandler interface {
	// Handle processes a domain event.
	Handle(event DomainEvent) error

	// CanHandle checks if this handler can handle the given event type.
	CanHandle(eventType string) bool
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	// Publish publishes a single event.
	Publish(event DomainEvent) error

	// PublishAll publishes multiple events.
	PublishAll(events []DomainEvent) error
}

// EventSubscriber subscribes to domain events.
type EventSubscriber interface {
	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler for a specific event type.
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	// Start starts the event dispatcher.
	Start() error

	// Stop stops the event dispatcher.
	Stop() error
}
