package credit

import (
	"context"
	"fmt"

	"traindesk/internal/domain/coupon"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/biztime"
	"traindesk/internal/shared/errors"
	"traindesk/internal/shared/logger"
)

type ListCouponsQuery struct {
	UserID uint
}

type ListCouponsResult struct {
	Coupons []coupon.Snapshot
}

// ListCouponsUseCase returns the user's coupons with lazy expiry applied to
// the reported status.
type ListCouponsUseCase struct {
	couponRepo coupon.Repository
	logger     logger.Interface
}

func NewListCouponsUseCase(couponRepo coupon.Repository, logger logger.Interface) *ListCouponsUseCase {
	return &ListCouponsUseCase{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

func (uc *ListCouponsUseCase) Execute(ctx context.Context, query ListCouponsQuery) (*ListCouponsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	coupons, err := uc.couponRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list coupons", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list coupons")
	}

	now := biztime.NowUTC()
	snapshots := make([]coupon.Snapshot, 0, len(coupons))
	for _, c := range coupons {
		snap := c.Snapshot()
		snap.Status = c.EffectiveStatus(now).String()
		snapshots = append(snapshots, snap)
	}

	return &ListCouponsResult{Coupons: snapshots}, nil
}

type GetBalanceQuery struct {
	UserID uint
}

type GetBalanceResult struct {
	UserID          uint
	Balance         int
	CouponThreshold int
	CanConvert      bool
}

// GetBalanceUseCase reports the user's current credit balance and whether it
// clears the coupon exchange threshold.
type GetBalanceUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetBalanceUseCase(userRepo user.Repository, logger logger.Interface) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, query GetBalanceQuery) (*GetBalanceResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", query.UserID))
	}

	return &GetBalanceResult{
		UserID:          u.ID(),
		Balance:         u.TotalCredits(),
		CouponThreshold: CouponThreshold,
		CanConvert:      u.TotalCredits() >= CouponThreshold,
	}, nil
}
