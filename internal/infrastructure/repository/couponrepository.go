package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"traindesk/internal/domain/coupon"
	"traindesk/internal/infrastructure/persistence/mappers"
	"traindesk/internal/infrastructure/persistence/models"
	"traindesk/internal/shared/db"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(database *gorm.DB) *CouponRepository {
	return &CouponRepository{db: database}
}

func (r *CouponRepository) Save(ctx context.Context, c *coupon.Coupon) error {
	model := mappers.CouponToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	return c.SetID(model.ID)
}

func (r *CouponRepository) GetByID(ctx context.Context, id uint) (*coupon.Coupon, error) {
	var model models.CouponModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("coupon not found")
		}
		return nil, err
	}
	return mappers.CouponToDomain(&model)
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	var model models.CouponModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", code).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("coupon not found")
		}
		return nil, err
	}
	return mappers.CouponToDomain(&model)
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	model := mappers.CouponToModel(c)
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *CouponRepository) ListByUser(ctx context.Context, userID uint) ([]*coupon.Coupon, error) {
	var couponModels []models.CouponModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&couponModels).Error
	if err != nil {
		return nil, err
	}

	coupons := make([]*coupon.Coupon, 0, len(couponModels))
	for i := range couponModels {
		c, err := mappers.CouponToDomain(&couponModels[i])
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}
