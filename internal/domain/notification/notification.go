// Package notification contains the per-user notification records produced by
// the post-commit event fan-out.
package notification

import (
	"fmt"
	"time"
)

type Notification struct {
	id        uint
	userID    uint
	eventType string
	title     string
	payload   []byte
	read      bool
	createdAt time.Time
}

func NewNotification(userID uint, eventType, title string, payload []byte) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(eventType) == 0 {
		return nil, fmt.Errorf("event type is required")
	}

	return &Notification{
		userID:    userID,
		eventType: eventType,
		title:     title,
		payload:   payload,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructNotification(id, userID uint, eventType, title string, payload []byte, read bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	return &Notification{
		id:        id,
		userID:    userID,
		eventType: eventType,
		title:     title,
		payload:   payload,
		read:      read,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint            { return n.id }
func (n *Notification) UserID() uint        { return n.userID }
func (n *Notification) EventType() string   { return n.eventType }
func (n *Notification) Title() string       { return n.title }
func (n *Notification) Payload() []byte     { return n.payload }
func (n *Notification) IsRead() bool        { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.read = true
}
