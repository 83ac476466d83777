package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	vo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ResolveTicketCommand struct {
	TicketID        uint
	ResolverID      uint
	IsAdmin         bool
	RootCause       string
	FixSteps        string
	PreventionNotes string
	Tags            []string
	Attachments     []string
}

type ResolveTicketResult struct {
	TicketID       uint
	TicketStatus   string
	SolutionID     uint
	SolutionStatus string
	SelfSolved     bool
}

// ResolveTicketUseCase submits a fresh solution for an in-progress ticket.
// Normally the solution lands in pending review and the ticket stays
// in-progress; when the resolver is the ticket creator the solution is
// auto-approved and the ticket closes immediately, with no credits paid.
type ResolveTicketUseCase struct {
	txMgr        TransactionManager
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewResolveTicketUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		txMgr:        txMgr,
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error) {
	uc.logger.Infow("executing resolve ticket use case", "ticket_id", cmd.TicketID, "resolver_id", cmd.ResolverID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var (
		resolvedTicket *ticket.Ticket
		sol            *solution.Solution
		selfSolved     bool
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

		if t.Status() == vo.StatusResolved {
			return errors.NewInvalidStateError("ticket is already resolved")
		}
		if t.Status() != vo.StatusInProgress {
			return errors.NewInvalidStateError(fmt.Sprintf("ticket in status %s cannot be resolved", t.Status()))
		}
		if !t.IsRedeemedBy(cmd.ResolverID) && !cmd.IsAdmin {
			return errors.NewForbiddenError("only the redeemer may resolve this ticket")
		}

		s, err := solution.NewSolution(cmd.TicketID, cmd.ResolverID, cmd.RootCause, cmd.FixSteps, cmd.PreventionNotes, cmd.Tags, cmd.Attachments)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		selfSolved = t.IsCreator(cmd.ResolverID)
		if selfSolved {
			// Creator fixed their own ticket: no review, no credits.
			if err := s.AutoApprove(); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
		}

		if err := uc.solutionRepo.Save(txCtx, s); err != nil {
			uc.logger.Errorw("failed to save solution", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to save solution: %w", err)
		}

		if selfSolved {
			if err := t.MarkResolved(nil); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return fmt.Errorf("failed to update ticket: %w", err)
			}
			postCommit = append(postCommit,
				solution.NewSolutionApprovedEvent(s, 0),
				ticket.NewTicketResolvedEvent(t, cmd.ResolverID),
			)
		}

		resolvedTicket = t
		sol = s
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to resolve ticket")
	}

	if len(postCommit) > 0 {
		if err := uc.publisher.PublishAll(postCommit); err != nil {
			uc.logger.Warnw("failed to publish resolution events", "ticket_id", cmd.TicketID, "error", err)
		}
	}

	uc.logger.Infow("solution submitted", "ticket_id", cmd.TicketID, "solution_id", sol.ID(), "self_solved", selfSolved)

	return &ResolveTicketResult{
		TicketID:       resolvedTicket.ID(),
		TicketStatus:   resolvedTicket.Status().String(),
		SolutionID:     sol.ID(),
		SolutionStatus: sol.Status().String(),
		SelfSolved:     selfSolved,
	}, nil
}

func (uc *ResolveTicketUseCase) validateCommand(cmd ResolveTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ResolverID == 0 {
		return errors.NewValidationError("resolver user ID is required")
	}
	if cmd.RootCause == "" {
		return errors.NewValidationError("root cause is required")
	}
	if cmd.FixSteps == "" {
		return errors.NewValidationError("fix steps are required")
	}
	return nil
}
