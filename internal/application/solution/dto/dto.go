// Package dto defines knowledge base views: solution content plus rendered
// HTML for display.
package dto

import (
	"time"

	"traindesk/internal/domain/solution"
)

type KnowledgeEntryDTO struct {
	ID              uint       `json:"id"`
	TicketID        uint       `json:"ticket_id"`
	AuthorID        uint       `json:"author_id"`
	RootCause       string     `json:"root_cause"`
	FixSteps        string     `json:"fix_steps"`
	FixStepsHTML    string     `json:"fix_steps_html,omitempty"`
	PreventionNotes string     `json:"prevention_notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	ReuseCount      int        `json:"reuse_count"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromSolution(s *solution.Solution) *KnowledgeEntryDTO {
	snap := s.Snapshot()
	return &KnowledgeEntryDTO{
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
}
