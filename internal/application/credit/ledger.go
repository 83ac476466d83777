// Package credit implements the credit ledger and coupon exchange. All
// balance mutations happen here, inside the caller's transaction, with the
// user row locked so concurrent workflows cannot double-award.
package credit

import (
	"context"
	"fmt"

	"traindesk/internal/domain/user"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

const (
	// ResolutionAward is paid to the resolver when a solution is approved
	// or a ticket is closed by reuse.
	ResolutionAward = 10

	// ReuseAward is paid to the author of a solution each time it is reused.
	ReuseAward = 5

	// CouponThreshold is the balance required to exchange for a coupon.
	CouponThreshold = 50

	// CouponCost is deducted from the balance per exchange.
	CouponCost = 50

	// CouponAmount is the face value of a minted coupon.
	CouponAmount = 10

	// CouponValidityMonths is how long a minted coupon stays redeemable.
	CouponValidityMonths = 6
)

// Ledger moves credits on user accounts. It must be called inside a
// transaction started via the transaction manager; it locks the user row
// before reading the balance.
type Ledger struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewLedger(userRepo user.Repository, logger logger.Interface) *Ledger {
	return &Ledger{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Award adds amount to the user's balance and returns the credit event to
// publish after commit. Admin accounts always earn zero; a zero amount is a
// no-op and returns a nil event.
func (l *Ledger) Award(ctx context.Context, userID uint, amount int, reason string) (*user.CreditUpdatedEvent, error) {
	if amount < 0 {
		return nil, errors.NewValidationError("award amount cannot be negative")
	}
	if amount == 0 {
		return nil, nil
	}

	u, err := l.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
	}

	if u.Role().IsAdmin() {
		l.logger.Debugw("skipping credit award for admin", "user_id", userID, "reason", reason)
		return nil, nil
	}

	if err := u.AddCredits(amount); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := l.userRepo.Update(ctx, u); err != nil {
		l.logger.Errorw("failed to persist credit award", "user_id", userID, "amount", amount, "error", err)
		return nil, errors.NewInternalError("failed to update credit balance")
	}

	l.logger.Infow("credits awarded", "user_id", userID, "amount", amount, "balance", u.TotalCredits(), "reason", reason)
	return user.NewCreditUpdatedEvent(u, amount, reason), nil
}

// Deduct removes amount from the user's balance, failing when the balance is
// insufficient, and returns the credit event to publish after commit.
func (l *Ledger) Deduct(ctx context.Context, userID uint, amount int, reason string) (*user.CreditUpdatedEvent, error) {
	if amount <= 0 {
		return nil, errors.NewValidationError("deduction amount must be positive")
	}

	u, err := l.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
	}

	if err := u.DeductCredits(amount); err != nil {
		if err == user.ErrInsufficientCredits {
			return nil, errors.NewInsufficientCreditsError(fmt.Sprintf("balance %d is below required %d", u.TotalCredits(), amount))
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := l.userRepo.Update(ctx, u); err != nil {
		l.logger.Errorw("failed to persist credit deduction", "user_id", userID, "amount", amount, "error", err)
		return nil, errors.NewInternalError("failed to update credit balance")
	}

	l.logger.Infow("credits deducted", "user_id", userID, "amount", amount, "balance", u.TotalCredits(), "reason", reason)
	return user.NewCreditUpdatedEvent(u, -amount, reason), nil
}
