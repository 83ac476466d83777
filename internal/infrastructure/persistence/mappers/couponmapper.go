package mappers

import (
	"fmt"

	"traindesk/internal/domain/coupon"
	couponvo "traindesk/internal/domain/coupon/valueobjects"
	"traindesk/internal/infrastructure/persistence/models"
)

func CouponToModel(c *coupon.Coupon) *models.CouponModel {
	return &models.CouponModel{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Code:      c.Code(),
		Amount:    c.Amount(),
		Status:    c.Status().String(),
		ExpiresAt: c.ExpiresAt(),
		UsedAt:    c.UsedAt(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func CouponToDomain(m *models.CouponModel) (*coupon.Coupon, error) {
	status, err := couponvo.NewCouponStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("coupon %d: %w", m.ID, err)
	}
	return coupon.ReconstructCoupon(
		m.ID,
		m.UserID,
		m.Code,
		m.Amount,
		status,
		m.ExpiresAt,
		m.UsedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
