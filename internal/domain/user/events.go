package user

import (
	"fmt"
	"time"

	"traindesk/internal/domain/shared/events"
)

const (
	CreditUpdatedEventType = "credit_updated"
)

// CreditUpdatedEvent is emitted after a committed credit award or deduction.
// Amount is signed: positive for awards, negative for coupon exchanges.
type CreditUpdatedEvent struct {
	events.BaseEvent
	User    Snapshot `json:"user"`
	Amount  int      `json:"amount"`
	Balance int      `json:"balance"`
	Reason  string   `json:"reason"`
}

func NewCreditUpdatedEvent(u *User, amount int, reason string) *CreditUpdatedEvent {
	return &CreditUpdatedEvent{
		BaseEvent: events.NewBaseEvent(CreditUpdatedEventType, fmt.Sprintf("%d", u.ID()), time.Now().UTC()),
		User:      u.Snapshot(),
		Amount:    amount,
		Balance:   u.TotalCredits(),
		Reason:    reason,
	}
}
