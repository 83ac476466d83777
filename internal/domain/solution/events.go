package solution

import (
	"fmt"
	"time"

	"traindesk/internal/domain/shared/events"
)

const (
	SolutionApprovedEventType = "solution_approved"
	SolutionRejectedEventType = "solution_rejected"
)

// SolutionEvent carries the full solution snapshot and the reviewer.
// ReviewerID is zero for auto-approved self-solved tickets.
type SolutionEvent struct {
	events.BaseEvent
	Solution   Snapshot `json:"solution"`
	ReviewerID uint     `json:"reviewer_id,omitempty"`
}

func newSolutionEvent(eventType string, s *Solution, reviewerID uint) *SolutionEvent {
	return &SolutionEvent{
		BaseEvent:  events.NewBaseEvent(eventType, fmt.Sprintf("%d", s.ID()), time.Now().UTC()),
		Solution:   s.Snapshot(),
		ReviewerID: reviewerID,
	}
}

func NewSolutionApprovedEvent(s *Solution, reviewerID uint) *SolutionEvent {
	return newSolutionEvent(SolutionApprovedEventType, s, reviewerID)
}

func NewSolutionRejectedEvent(s *Solution, reviewerID uint) *SolutionEvent {
	return newSolutionEvent(SolutionRejectedEventType, s, reviewerID)
}
