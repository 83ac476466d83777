package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/application/credit"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	vo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ResolveWithExistingCommand struct {
	TicketID   uint
	SolutionID uint
	ResolverID uint
	IsAdmin    bool
}

type ResolveWithExistingResult struct {
	TicketID      uint
	TicketStatus  string
	SolutionID    uint
	ReuseCount    int
	ResolverAward int
	AuthorAward   int
}

// ResolveWithExistingUseCase closes an in-progress ticket by pointing it at an
// approved solution from the knowledge base. The ticket close, the reuse
// counter bump, and both credit awards commit atomically. Lock order is
// ticket, then solution, then user rows.
type ResolveWithExistingUseCase struct {
	txMgr        TransactionManager
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	ledger       *credit.Ledger
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewResolveWithExistingUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	ledger *credit.Ledger,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ResolveWithExistingUseCase {
	return &ResolveWithExistingUseCase{
		txMgr:        txMgr,
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		ledger:       ledger,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ResolveWithExistingUseCase) Execute(ctx context.Context, cmd ResolveWithExistingCommand) (*ResolveWithExistingResult, error) {
	uc.logger.Infow("executing resolve with existing use case",
		"ticket_id", cmd.TicketID, "solution_id", cmd.SolutionID, "resolver_id", cmd.ResolverID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var (
		resolvedTicket *ticket.Ticket
		reused         *solution.Solution
		resolverAward  int
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

		if t.Status() == vo.StatusResolved {
			return errors.NewInvalidStateError("ticket is already resolved")
		}
		if t.Status() != vo.StatusInProgress {
			return errors.NewInvalidStateError(fmt.Sprintf("ticket in status %s cannot be resolved", t.Status()))
		}
		if !t.IsRedeemedBy(cmd.ResolverID) && !cmd.IsAdmin {
			return errors.NewForbiddenError("only the redeemer may resolve this ticket")
		}

		s, err := uc.solutionRepo.GetByIDForUpdate(txCtx, cmd.SolutionID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("solution %d not found", cmd.SolutionID))
		}
		if !s.IsReusable() {
			return errors.NewInvalidStateError("solution is not approved and active")
		}

		solutionID := s.ID()
		if err := t.MarkResolved(&solutionID); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		if err := s.RecordReuse(); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}
		if err := uc.solutionRepo.Update(txCtx, s); err != nil {
			uc.logger.Errorw("failed to update solution", "solution_id", cmd.SolutionID, "error", err)
			return fmt.Errorf("failed to update solution: %w", err)
		}

		// Self-solved reuse pays nothing on either leg.
		selfSolved := t.IsCreator(cmd.ResolverID)

		resolverAward = credit.ResolutionAward
		if selfSolved {
			resolverAward = 0
		}
		if resolverAward > 0 {
			event, err := uc.ledger.Award(txCtx, cmd.ResolverID, resolverAward, "ticket_resolved_by_reuse")
			if err != nil {
				return err
			}
			if event == nil {
				resolverAward = 0
			} else {
				postCommit = append(postCommit, event)
			}
		}

		authorAward = credit.ReuseAward
		if selfSolved && s.AuthorID() == cmd.ResolverID {
			authorAward = 0
		}
		if authorAward > 0 {
			event, err := uc.ledger.Award(txCtx, s.AuthorID(), authorAward, "solution_reused")
			if err != nil {
				return err
			}
			if event == nil {
				authorAward = 0
			} else {
				postCommit = append(postCommit, event)
			}
		}

		resolvedTicket = t
		reused = s
		postCommit = append(postCommit, ticket.NewTicketResolvedEvent(t, cmd.ResolverID))
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to resolve ticket with existing solution")
	}

	if err := uc.publisher.PublishAll(postCommit); err != nil {
		uc.logger.Warnw("failed to publish resolution events", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket resolved by reuse",
		"ticket_id", cmd.TicketID, "solution_id", cmd.SolutionID,
		"resolver_award", resolverAward, "author_award", authorAward)

	return &ResolveWithExistingResult{
		TicketID:      resolvedTicket.ID(),
		TicketStatus:  resolvedTicket.Status().String(),
		SolutionID:    reused.ID(),
		ReuseCount:    reused.ReuseCount(),
		ResolverAward: resolverAward,
		AuthorAward:   authorAward,
	}, nil
}

func (uc *ResolveWithExistingUseCase) validateCommand(cmd ResolveWithExistingCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.ResolverID == 0 {
		return errors.NewValidationError("resolver user ID is required")
	}
	return nil
}
