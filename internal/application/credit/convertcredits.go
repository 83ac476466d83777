package credit

import (
	"context"
	"fmt"

	"traindesk/internal/domain/coupon"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/shared/biztime"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ConvertCreditsCommand struct {
	UserID uint
}

type ConvertCreditsResult struct {
	Coupon  coupon.Snapshot
	Balance int
}

// ConvertCreditsUseCase exchanges accumulated credits for a reward coupon.
// The deduction and the coupon insert commit atomically; the credit event is
// published only after the commit.
type ConvertCreditsUseCase struct {
	txMgr      TransactionManager
	ledger     *Ledger
	couponRepo coupon.Repository
	codeGen    CodeGenerator
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewConvertCreditsUseCase(
	txMgr TransactionManager,
	ledger *Ledger,
	couponRepo coupon.Repository,
	codeGen CodeGenerator,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ConvertCreditsUseCase {
	return &ConvertCreditsUseCase{
		txMgr:      txMgr,
		ledger:     ledger,
		couponRepo: couponRepo,
		codeGen:    codeGen,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ConvertCreditsUseCase) Execute(ctx context.Context, cmd ConvertCreditsCommand) (*ConvertCreditsResult, error) {
	uc.logger.Infow("executing convert credits use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	code, err := uc.codeGen.GenerateCouponCode()
	if err != nil {
		uc.logger.Errorw("failed to generate coupon code", "error", err)
		return nil, errors.NewInternalError("failed to generate coupon code")
	}

	var (
		minted       *coupon.Coupon
		creditEvents []events.DomainEvent
		balance      int
	)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		deductEvent, err := uc.ledger.Deduct(txCtx, cmd.UserID, CouponCost, "coupon_exchange")
		if err != nil {
			return err
		}
		balance = deductEvent.Balance

		expiresAt := biztime.AddMonthsUTC(biztime.NowUTC(), CouponValidityMonths)
		c, err := coupon.NewCoupon(cmd.UserID, code, CouponAmount, expiresAt)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.couponRepo.Save(txCtx, c); err != nil {
			uc.logger.Errorw("failed to save coupon", "user_id", cmd.UserID, "error", err)
			return fmt.Errorf("failed to save coupon: %w", err)
		}

		minted = c
		creditEvents = append(creditEvents, deductEvent)
		return nil
	})
	if txErr != nil {
		if errors.GetAppError(txErr) != nil {
			return nil, txErr
		}
		uc.logger.Errorw("convert credits transaction failed", "user_id", cmd.UserID, "error", txErr)
		return nil, errors.NewInternalError("failed to convert credits")
	}

	// Post-commit fan-out; delivery failures never affect the exchange.
	if err := uc.publisher.PublishAll(creditEvents); err != nil {
		uc.logger.Warnw("failed to publish credit events", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("credits converted to coupon", "user_id", cmd.UserID, "coupon_id", minted.ID(), "balance", balance)

	return &ConvertCreditsResult{
		Coupon:  minted.Snapshot(),
		Balance: balance,
	}, nil
}
