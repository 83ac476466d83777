package usecases

import (
	"context"

	"traindesk/internal/domain/solution"
	solutionvo "traindesk/internal/domain/solution/valueobjects"
	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type GetStatsQuery struct{}

type GetStatsResult struct {
	Users             int64            `json:"users"`
	TicketsByStatus   map[string]int64 `json:"tickets_by_status"`
	PendingSolutions  int64            `json:"pending_solutions"`
	ApprovedSolutions int64            `json:"approved_solutions"`
	RejectedSolutions int64            `json:"rejected_solutions"`
}

// GetStatsUseCase assembles the admin dashboard counters.
type GetStatsUseCase struct {
	userRepo     user.Repository
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewGetStatsUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	logger logger.Interface,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context, _ GetStatsQuery) (*GetStatsResult, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, errors.NewInternalError("failed to load statistics")
	}

	byStatus := make(map[string]int64, len(ticketvo.AllStatuses()))
	for _, status := range ticketvo.AllStatuses() {
		count, err := uc.ticketRepo.CountByStatus(ctx, status)
		if err != nil {
			uc.logger.Errorw("failed to count tickets", "status", status, "error", err)
			return nil, errors.NewInternalError("failed to load statistics")
		}
		byStatus[status.String()] = count
	}

	pending, err := uc.solutionRepo.CountByStatus(ctx, solutionvo.StatusPending.String())
	if err != nil {
		return nil, errors.NewInternalError("failed to load statistics")
	}
	approved, err := uc.solutionRepo.CountByStatus(ctx, solutionvo.StatusApproved.String())
	if err != nil {
		return nil, errors.NewInternalError("failed to load statistics")
	}
	rejected, err := uc.solutionRepo.CountByStatus(ctx, solutionvo.StatusRejected.String())
	if err != nil {
		return nil, errors.NewInternalError("failed to load statistics")
	}

	return &GetStatsResult{
		Users:             users,
		TicketsByStatus:   byStatus,
		PendingSolutions:  pending,
		ApprovedSolutions: approved,
		RejectedSolutions: rejected,
	}, nil
}
