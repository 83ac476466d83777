package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/application/ticket/dto"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	IsAdmin     bool
}

// GetTicketUseCase loads a ticket with its solution, applying the content
// redaction policy for the requester. Soft-deleted tickets are visible only
// to their creator and admins.
type GetTicketUseCase struct {
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	if t.IsDeleted() && !t.IsCreator(query.RequesterID) && !query.IsAdmin {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	result := dto.FromTicket(t)

	viewer := dto.Viewer{UserID: query.RequesterID, IsAdmin: query.IsAdmin}

	s, err := uc.solutionRepo.GetByTicketID(ctx, query.TicketID)
	if err == nil && s != nil {
		result.Solution = dto.FromSolution(s, t, viewer)
	}

	// Tickets closed by reuse point at a solution from another ticket.
	if result.Solution == nil && t.ReusedSolutionID() != nil {
		if reused, err := uc.solutionRepo.GetByID(ctx, *t.ReusedSolutionID()); err == nil && reused != nil {
			result.Solution = dto.FromSolution(reused, t, viewer)
		}
	}

	return result, nil
}
