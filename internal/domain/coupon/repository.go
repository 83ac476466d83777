package coupon

import "context"

// Repository defines persistence operations for the coupon aggregate.
type Repository interface {
	Save(ctx context.Context, c *Coupon) error
	GetByID(ctx context.Context, id uint) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	Update(ctx context.Context, c *Coupon) error
	ListByUser(ctx context.Context, userID uint) ([]*Coupon, error)
}
