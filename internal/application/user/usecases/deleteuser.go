// Package usecases implements account administration: offboarding users and
// the admin dashboard statistics.
package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteUserCommand struct {
	UserID  uint
	AdminID uint
}

type DeleteUserResult struct {
	UserID           uint
	TicketsDeleted   int
	SolutionsDeleted int
	TicketsReleased  int
}

// DeleteUserUseCase offboards a user in one transaction: their solutions and
// tickets are soft-deleted, tickets they currently hold are released back to
// their creators, and finally the account itself is soft-deleted.
type DeleteUserUseCase struct {
	txMgr        TransactionManager
	userRepo     user.Repository
	ticketRepo   ticket.Repository
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewDeleteUserUseCase(
	txMgr TransactionManager,
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	solutionRepo solution.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		txMgr:        txMgr,
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "admin_id", cmd.AdminID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.AdminID {
		return nil, errors.NewValidationError("admins cannot delete their own account")
	}

	result := &DeleteUserResult{UserID: cmd.UserID}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
		}
		if u.IsDeleted() {
			return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
		}

		solutions, err := uc.solutionRepo.ListByAuthor(txCtx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to list user solutions: %w", err)
		}
		for _, s := range solutions {
			if s.IsDeleted() {
				continue
			}
			if err := uc.solutionRepo.Delete(txCtx, s.ID()); err != nil {
				return fmt.Errorf("failed to delete solution %d: %w", s.ID(), err)
			}
			result.SolutionsDeleted++
		}

		tickets, err := uc.ticketRepo.ListByCreator(txCtx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to list user tickets: %w", err)
		}
		for _, t := range tickets {
			if t.IsDeleted() {
				continue
			}
			if err := uc.ticketRepo.Delete(txCtx, t.ID()); err != nil {
				return fmt.Errorf("failed to delete ticket %d: %w", t.ID(), err)
			}
			result.TicketsDeleted++
		}

		// Tickets the user redeemed but did not raise go back into the
		// pool for someone else to pick up.
		held, err := uc.ticketRepo.ListByRedeemer(txCtx, cmd.UserID)
		if err != nil {
			return fmt.Errorf("failed to list redeemed tickets: %w", err)
		}
		for _, t := range held {
			if t.IsDeleted() || t.IsCreator(cmd.UserID) {
				continue
			}
			t.ClearRedeemer()
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return fmt.Errorf("failed to release ticket %d: %w", t.ID(), err)
			}
			result.TicketsReleased++
		}

		if err := uc.userRepo.Delete(txCtx, cmd.UserID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		uc.logger.Errorw("delete user transaction failed", "user_id", cmd.UserID, "error", txErr)
		return nil, errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted",
		"user_id", cmd.UserID,
		"tickets_deleted", result.TicketsDeleted,
		"solutions_deleted", result.SolutionsDeleted,
		"tickets_released", result.TicketsReleased)

	return result, nil
}
