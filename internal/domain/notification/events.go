package notification

import (
	"fmt"
	"time"

	"traindesk/internal/domain/shared/events"
)

const ReceivedEventType = "notification_received"

// ReceivedEvent announces a stored notification so connected clients can
// refresh their unread counters without polling.
type ReceivedEvent struct {
	events.BaseEvent
	NotificationID uint   `json:"notification_id"`
	UserID         uint   `json:"user_id"`
	SourceType     string `json:"source_type"`
	Title          string `json:"title"`
}

func NewReceivedEvent(n *Notification) *ReceivedEvent {
	return &ReceivedEvent{
		BaseEvent:      events.NewBaseEvent(ReceivedEventType, fmt.Sprintf("%d", n.ID()), time.Now().UTC()),
		NotificationID: n.ID(),
		UserID:         n.UserID(),
		SourceType:     n.EventType(),
		Title:          n.Title(),
	}
}
