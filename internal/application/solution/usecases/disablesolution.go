package usecases

import (
	"context"
	"fmt"

	"traindesk/internal/domain/solution"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type DisableSolutionCommand struct {
	SolutionID uint
	AdminID    uint
}

// DisableSolutionUseCase pulls a solution out of the reuse pool without
// deleting it. Past reuses and credits are untouched.
type DisableSolutionUseCase struct {
	txMgr        TransactionManager
	solutionRepo solution.Repository
	logger       logger.Interface
}

func NewDisableSolutionUseCase(
	txMgr TransactionManager,
	solutionRepo solution.Repository,
	logger logger.Interface,
) *DisableSolutionUseCase {
	return &DisableSolutionUseCase{
		txMgr:        txMgr,
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *DisableSolutionUseCase) Execute(ctx context.Context, cmd DisableSolutionCommand) error {
	uc.logger.Infow("executing disable solution use case", "solution_id", cmd.SolutionID, "admin_id", cmd.AdminID)

	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.solutionRepo.GetByIDForUpdate(txCtx, cmd.SolutionID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("solution %d not found", cmd.SolutionID))
		}
		if !s.IsActive() {
			return errors.NewInvalidStateError("solution is already disabled")
		}

		s.Disable()
		if err := uc.solutionRepo.Update(txCtx, s); err != nil {
			uc.logger.Errorw("failed to update solution", "solution_id", cmd.SolutionID, "error", err)
			return fmt.Errorf("failed to update solution: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return txErr
		}
		return errors.NewInternalError("failed to disable solution")
	}

	uc.logger.Infow("solution disabled", "solution_id", cmd.SolutionID)
	return nil
}
