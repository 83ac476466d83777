package mappers

import (
	"fmt"

	"traindesk/internal/domain/solution"
	solutionvo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/infrastructure/persistence/models"
)

func SolutionToModel(s *solution.Solution) *models.SolutionModel {
	return &models.SolutionModel{
		ID:              s.ID(),
		TicketID:        s.TicketID(),
		AuthorID:        s.AuthorID(),
		RootCause:       s.RootCause(),
		FixSteps:        s.FixSteps(),
		PreventionNotes: s.PreventionNotes(),
		Tags:            stringsToJSON(s.Tags()),
		Attachments:     stringsToJSON(s.Attachments()),
		Status:          s.Status().String(),
		IsActive:        s.IsActive(),
		ReuseCount:      s.ReuseCount(),
		ReviewedBy:      s.ReviewedBy(),
		ReviewedAt:      s.ReviewedAt(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		DeletedAt:       toGormDeletedAt(s.DeletedAt()),
	}
}

func SolutionToDomain(m *models.SolutionModel) (*solution.Solution, error) {
	status, err := solutionvo.NewReviewStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("solution %d: %w", m.ID, err)
	}
	tags, err := jsonToStrings(m.Tags)
	if err != nil {
		return nil, fmt.Errorf("solution %d tags: %w", m.ID, err)
	}
	attachments, err := jsonToStrings(m.Attachments)
	if err != nil {
		return nil, fmt.Errorf("solution %d attachments: %w", m.ID, err)
	}
	return solution.ReconstructSolution(
		m.ID,
		m.TicketID,
		m.AuthorID,
		m.RootCause,
		m.FixSteps,
		m.PreventionNotes,
		tags,
		attachments,
		status,
		m.IsActive,
		m.ReuseCount,
		m.ReviewedBy,
		m.ReviewedAt,
		m.CreatedAt,
		m.UpdatedAt,
		fromGormDeletedAt(m.DeletedAt),
	)
}
