package models

import "time"

type CouponModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Code      string `gorm:"uniqueIndex;size:32;not null"`
	Amount    int    `gorm:"not null"`
	Status    string `gorm:"size:20;not null;index"`
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CouponModel) TableName() string {
	return "coupons"
}
