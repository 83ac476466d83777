// Package dto defines the read-side views for tickets and solutions,
// including the redaction policy for unapproved solution content.
package dto

import (
	"time"

	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID               uint         `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Attachments      []string     `json:"attachments,omitempty"`
	Status           string       `json:"status"`
	CreatedBy        uint         `json:"created_by"`
	RedeemedBy       *uint        `json:"redeemed_by,omitempty"`
	ReusedSolutionID *uint        `json:"reused_solution_id,omitempty"`
	Solution         *SolutionDTO `json:"solution,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	DeletedAt        *time.Time   `json:"deleted_at,omitempty"`
}

type SolutionDTO struct {
	ID              uint       `json:"id"`
	TicketID        uint       `json:"ticket_id"`
	AuthorID        uint       `json:"author_id"`
	RootCause       string     `json:"root_cause,omitempty"`
	FixSteps        string     `json:"fix_steps,omitempty"`
	PreventionNotes string     `json:"prevention_notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	ReuseCount      int        `json:"reuse_count"`
	Redacted        bool       `json:"redacted,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Viewer identifies who is reading, for the redaction policy.
type Viewer struct {
	UserID  uint
	IsAdmin bool
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	snap := t.Snapshot()
	return &TicketDTO{
		ID:               snap.ID,
		Title:            snap.Title,
		Description:      snap.Description,
		Attachments:      snap.Attachments,
		Status:           snap.Status,
		CreatedBy:        snap.CreatedBy,
		RedeemedBy:       snap.RedeemedBy,
		ReusedSolutionID: snap.ReusedSolutionID,
		CreatedAt:        snap.CreatedAt,
		UpdatedAt:        snap.UpdatedAt,
		DeletedAt:        snap.DeletedAt,
	}
}

// CanViewSolutionContent decides whether the viewer sees the full write-up.
// Approved solutions are knowledge base content and visible to everyone;
// pending and rejected content is restricted to the parties and admins.
func CanViewSolutionContent(s *solution.Solution, t *ticket.Ticket, v Viewer) bool {
	if s.Status().IsApproved() {
		return true
	}
	if v.IsAdmin {
		return true
	}
	if s.AuthorID() == v.UserID {
		return true
	}
	if t != nil && (t.IsCreator(v.UserID) || t.IsRedeemedBy(v.UserID)) {
		return true
	}
	return false
}

// FromSolution builds the solution view, blanking the write-up fields when
// the viewer is not allowed to see them. Status, IDs, and counters stay
// visible either way.
func FromSolution(s *solution.Solution, t *ticket.Ticket, v Viewer) *SolutionDTO {
	snap := s.Snapshot()
	d := &SolutionDTO{
		ID:              snap.ID,
		TicketID:        snap.TicketID,
		AuthorID:        snap.AuthorID,
		RootCause:       snap.RootCause,
		FixSteps:        snap.FixSteps,
		PreventionNotes: snap.PreventionNotes,
		Tags:            snap.Tags,
		Attachments:     snap.Attachments,
		Status:          snap.Status,
		IsActive:        snap.IsActive,
		ReuseCount:      snap.ReuseCount,
		ReviewedAt:      snap.ReviewedAt,
		CreatedAt:       snap.CreatedAt,
	}
	if !CanViewSolutionContent(s, t, v) {
		d.RootCause = ""
		d.FixSteps = ""
		d.PreventionNotes = ""
		d.Attachments = nil
		d.Redacted = true
	}
	return d
}
