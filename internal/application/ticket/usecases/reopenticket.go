package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID uint
	UserID   uint
}

type ReopenTicketResult struct {
	TicketID uint
	Status   string
}

// ReopenTicketUseCase puts a rejected or resolved ticket back into
// circulation. Only the creator may reopen; the redeemer is cleared so any
// peer can pick the ticket up again.
type ReopenTicketUseCase struct {
	txMgr      TransactionManager
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewReopenTicketUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		txMgr:      txMgr,
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error) {
	uc.logger.Infow("executing reopen ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	var reopened *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if t.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if err := t.Reopen(cmd.UserID); err != nil {
			switch err {
			case ticket.ErrNotCreator:
				return errors.NewForbiddenError("only the ticket creator may reopen it")
			case ticket.ErrInvalidTransition:
				return errors.NewInvalidStateError(fmt.Sprintf("ticket in status %s cannot be reopened", t.Status()))
			default:
				return errors.NewValidationError(err.Error())
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		reopened = t
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to reopen ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketReopenedEvent(reopened, cmd.UserID)); err != nil {
		uc.logger.Warnw("failed to publish ticket reopened event", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket reopened", "ticket_id", cmd.TicketID)

	return &ReopenTicketResult{
		TicketID: reopened.ID(),
		Status:   reopened.Status().String(),
	}, nil
}
