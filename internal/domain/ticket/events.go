package ticket

import (
	"fmt"
	"time"

	"traindesk/internal/domain/shared/events"
)

const (
	TicketCreatedEventType  = "ticket_created"
	TicketRedeemedEventType = "ticket_redeemed"
	TicketResolvedEventType = "ticket_resolved"
	TicketUpdatedEventType  = "ticket_updated"
	TicketReopenedEventType = "ticket_reopened"
	TicketDeletedEventType  = "ticket_deleted"
)

// TicketEvent carries the ticket snapshot plus the acting user. All ticket
// lifecycle events share this shape and differ only in event type.
type TicketEvent struct {
	events.BaseEvent
	Ticket  Snapshot `json:"ticket"`
	ActorID uint     `json:"actor_id"`
}

func newTicketEvent(eventType string, t *Ticket, actorID uint) *TicketEvent {
	return &TicketEvent{
		BaseEvent: events.NewBaseEvent(eventType, fmt.Sprintf("%d", t.ID()), time.Now().UTC()),
		Ticket:    t.Snapshot(),
		ActorID:   actorID,
	}
}

func NewTicketCreatedEvent(t *Ticket) *TicketEvent {
	return newTicketEvent(TicketCreatedEventType, t, t.CreatedBy())
}

func NewTicketRedeemedEvent(t *Ticket, actorID uint) *TicketEvent {
	return newTicketEvent(TicketRedeemedEventType, t, actorID)
}

func NewTicketResolvedEvent(t *Ticket, actorID uint) *TicketEvent {
	return newTicketEvent(TicketResolvedEventType, t, actorID)
}

func NewTicketUpdatedEvent(t *Ticket, actorID uint) *TicketEvent {
	return newTicketEvent(TicketUpdatedEventType, t, actorID)
}

func NewTicketReopenedEvent(t *Ticket, actorID uint) *TicketEvent {
	return newTicketEvent(TicketReopenedEventType, t, actorID)
}

func NewTicketDeletedEvent(t *Ticket, actorID uint) *TicketEvent {
	return newTicketEvent(TicketDeletedEventType, t, actorID)
}
