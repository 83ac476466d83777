package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/application/credit"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ReviewSolutionCommand struct {
	TicketID   uint
	SolutionID uint
	ReviewerID uint
	IsAdmin    bool
	Approve    bool
}

type ReviewSolutionResult struct {
	TicketID       uint
	TicketStatus   string
	SolutionID     uint
	SolutionStatus string
	AuthorAward    int
}

// ReviewSolutionUseCase records the verdict on a pending solution. Approval
// closes the ticket and pays the author; rejection retires the solution and
// moves the ticket to rejected, regardless of whether the reviewer is the
// ticket creator or an admin.
type ReviewSolutionUseCase struct {
	txMgr        TransactionManager
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	ledger       *credit.Ledger
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewReviewSolutionUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	ledger *credit.Ledger,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ReviewSolutionUseCase {
	return &ReviewSolutionUseCase{
		txMgr:        txMgr,
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		ledger:       ledger,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ReviewSolutionUseCase) Execute(ctx context.Context, cmd ReviewSolutionCommand) (*ReviewSolutionResult, error) {
	uc.logger.Infow("executing review solution use case",
		"ticket_id", cmd.TicketID, "solution_id", cmd.SolutionID, "approve", cmd.Approve)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var (
		reviewedTicket *ticket.Ticket
		reviewed       *solution.Solution
		authorAward    int
		postCommit     []events.DomainEvent
	)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if t.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if !t.IsCreator(cmd.ReviewerID) && !cmd.IsAdmin {
			return errors.NewForbiddenError("only the ticket creator or an admin may review solutions")
		}

		s, err := uc.solutionRepo.GetByIDForUpdate(txCtx, cmd.SolutionID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("solution %d not found", cmd.SolutionID))
		}
		if !s.BelongsToTicket(cmd.TicketID) {
			return errors.NewNotFoundError(fmt.Sprintf("solution %d not found for ticket %d", cmd.SolutionID, cmd.TicketID))
		}
		if !s.Status().IsPending() {
			return errors.NewInvalidStateError(fmt.Sprintf("solution is already %s", s.Status()))
		}

		if cmd.Approve {
			if err := s.Approve(cmd.ReviewerID); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.solutionRepo.Update(txCtx, s); err != nil {
				uc.logger.Errorw("failed to update solution", "solution_id", cmd.SolutionID, "error", err)
				return fmt.Errorf("failed to update solution: %w", err)
			}

			if err := t.MarkResolved(nil); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return fmt.Errorf("failed to update ticket: %w", err)
			}

			authorAward = credit.ResolutionAward
			event, err := uc.ledger.Award(txCtx, s.AuthorID(), authorAward, "solution_approved")
			if err != nil {
				return err
			}
			if event == nil {
				authorAward = 0
			} else {
				postCommit = append(postCommit, event)
			}

			postCommit = append(postCommit,
				solution.NewSolutionApprovedEvent(s, cmd.ReviewerID),
				ticket.NewTicketResolvedEvent(t, cmd.ReviewerID),
			)
		} else {
			if err := s.Reject(cmd.ReviewerID); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.solutionRepo.Update(txCtx, s); err != nil {
				uc.logger.Errorw("failed to update solution", "solution_id", cmd.SolutionID, "error", err)
				return fmt.Errorf("failed to update solution: %w", err)
			}

			if err := t.MarkRejected(); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return fmt.Errorf("failed to update ticket: %w", err)
			}

			postCommit = append(postCommit,
				solution.NewSolutionRejectedEvent(s, cmd.ReviewerID),
				ticket.NewTicketUpdatedEvent(t, cmd.ReviewerID),
			)
		}

		reviewedTicket = t
		reviewed = s
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to review solution")
	}

	if err := uc.publisher.PublishAll(postCommit); err != nil {
		uc.logger.Warnw("failed to publish review events", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("solution reviewed",
		"ticket_id", cmd.TicketID, "solution_id", cmd.SolutionID,
		"approved", cmd.Approve, "author_award", authorAward)

	return &ReviewSolutionResult{
		TicketID:       reviewedTicket.ID(),
		TicketStatus:   reviewedTicket.Status().String(),
		SolutionID:     reviewed.ID(),
		SolutionStatus: reviewed.Status().String(),
		AuthorAward:    authorAward,
	}, nil
}

func (uc *ReviewSolutionUseCase) validateCommand(cmd ReviewSolutionCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.ReviewerID == 0 {
		return errors.NewValidationError("reviewer user ID is required")
	}
	return nil
}
