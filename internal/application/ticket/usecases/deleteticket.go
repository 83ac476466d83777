package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

// DeleteTicketUseCase soft-deletes a ticket. Deletion is an admin action;
// the record stays queryable for its creator and for admins.
type DeleteTicketUseCase struct {
	txMgr      TransactionManager
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		txMgr:      txMgr,
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	var deleted *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if t.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if !cmd.IsAdmin {
			return errors.NewForbiddenError("only admins may delete tickets")
		}

		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to delete ticket: %w", err)
		}

		t.MarkDeleted()
		deleted = t
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return txErr
		}
		return errors.NewInternalError("failed to delete ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketDeletedEvent(deleted, cmd.UserID)); err != nil {
		uc.logger.Warnw("failed to publish ticket deleted event", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
