// Package valueobjects contains value objects for the ticket domain.
package valueobjects

import "fmt"

// TicketStatus is the lifecycle state of a help ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in-progress"
	StatusResolved   TicketStatus = "resolved"
	StatusRejected   TicketStatus = "rejected"
	StatusReopened   TicketStatus = "reopened"
)

var validStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusRejected:   true,
	StatusReopened:   true,
}

// validTransitions encodes the ticket state machine. A missing entry means
// the transition is forbidden.
var validTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen:       {StatusInProgress},
	StatusReopened:   {StatusInProgress},
	StatusInProgress: {StatusResolved, StatusRejected},
	StatusRejected:   {StatusReopened},
	StatusResolved:   {StatusReopened},
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

// IsRedeemable reports whether a peer may pick the ticket up.
func (s TicketStatus) IsRedeemable() bool {
	return s == StatusOpen || s == StatusReopened
}

// IsTerminal reports whether the ticket has left the active workflow.
// Resolved and rejected tickets only move again via reopening.
func (s TicketStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// CanTransitionTo reports whether the state machine allows moving to target.
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllStatuses returns every valid ticket status, for validators and filters.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusRejected, StatusReopened}
}
