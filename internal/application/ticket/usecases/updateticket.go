package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	UserID      uint
	IsAdmin     bool
	Title       string
	Description string
	Attachments []string
}

type UpdateTicketResult struct {
	TicketID uint
	Status   string
}

// UpdateTicketUseCase edits ticket content. Only the creator or an admin may
// edit, and not after the ticket is resolved.
type UpdateTicketUseCase struct {
	txMgr      TransactionManager
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		txMgr:      txMgr,
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Title == "" && cmd.Description == "" && cmd.Attachments == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	var updated *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if t.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if !t.IsCreator(cmd.UserID) && !cmd.IsAdmin {
			return errors.NewForbiddenError("only the ticket creator may edit it")
		}

		if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.Attachments); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		updated = t
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketUpdatedEvent(updated, cmd.UserID)); err != nil {
		uc.logger.Warnw("failed to publish ticket updated event", "ticket_id", cmd.TicketID, "error", err)
	}

	return &UpdateTicketResult{
		TicketID: updated.ID(),
		Status:   updated.Status().String(),
	}, nil
}
