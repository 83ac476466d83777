package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type RedeemTicketCommand struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

type RedeemTicketResult struct {
	TicketID   uint
	Status     string
	RedeemedBy uint
}

// RedeemTicketUseCase lets a peer pick up an open or reopened ticket. The
// ticket row is locked for the duration so two peers cannot both win it.
type RedeemTicketUseCase struct {
	txMgr      TransactionManager
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewRedeemTicketUseCase(
	txMgr TransactionManager,
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RedeemTicketUseCase {
	return &RedeemTicketUseCase{
		txMgr:      txMgr,
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *RedeemTicketUseCase) Execute(ctx context.Context, cmd RedeemTicketCommand) (*RedeemTicketResult, error) {
	uc.logger.Infow("executing redeem ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	var redeemed *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if t.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		if err := t.Redeem(cmd.UserID, cmd.IsAdmin); err != nil {
			switch err {
			case ticket.ErrRedeemedByOther:
				return errors.NewConflictError("ticket is already redeemed by another user")
			case ticket.ErrNotRedeemable:
				return errors.NewInvalidStateError(fmt.Sprintf("ticket in status %s cannot be redeemed", t.Status()))
			default:
				return errors.NewValidationError(err.Error())
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		redeemed = t
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		return nil, errors.NewInternalError("failed to redeem ticket")
	}

	if err := uc.publisher.Publish(ticket.NewTicketRedeemedEvent(redeemed, cmd.UserID)); err != nil {
		uc.logger.Warnw("failed to publish ticket redeemed event", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket redeemed", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	return &RedeemTicketResult{
		TicketID:   redeemed.ID(),
		Status:     redeemed.Status().String(),
		RedeemedBy: cmd.UserID,
	}, nil
}
