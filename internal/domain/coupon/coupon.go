// Package coupon contains the reward coupon aggregate, minted when a trainee
// exchanges accumulated credits.
package coupon

import (
	"errors"
	"fmt"
	"time"

	vo "traindesk/internal/domain/coupon/valueobjects"
)

var (
	// ErrNotActive is returned when using a coupon that is used or expired.
	ErrNotActive = errors.New("coupon is not active")

	// ErrExpired is returned when using a coupon past its expiry.
	ErrExpired = errors.New("coupon has expired")
)

type Coupon struct {
	id        uint
	userID    uint
	code      string
	amount    int
	status    vo.CouponStatus
	expiresAt time.Time
	usedAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewCoupon(userID uint, code string, amount int, expiresAt time.Time) (*Coupon, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("coupon code is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("coupon amount must be positive")
	}

	now := time.Now().UTC()
	if !expiresAt.After(now) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	return &Coupon{
		userID:    userID,
		code:      code,
		amount:    amount,
		status:    vo.StatusActive,
		expiresAt: expiresAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCoupon(
	id uint,
	userID uint,
	code string,
	amount int,
	status vo.CouponStatus,
	expiresAt time.Time,
	usedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Coupon, error) {
	if id == 0 {
		return nil, fmt.Errorf("coupon ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid coupon status: %s", status)
	}

	return &Coupon{
		id:        id,
		userID:    userID,
		code:      code,
		amount:    amount,
		status:    status,
		expiresAt: expiresAt,
		usedAt:    usedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Coupon) ID() uint {
	return c.id
}

func (c *Coupon) UserID() uint {
	return c.userID
}

func (c *Coupon) Code() string {
	return c.code
}

func (c *Coupon) Amount() int {
	return c.amount
}

func (c *Coupon) Status() vo.CouponStatus {
	return c.status
}

func (c *Coupon) ExpiresAt() time.Time {
	return c.expiresAt
}

func (c *Coupon) UsedAt() *time.Time {
	return c.usedAt
}

func (c *Coupon) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Coupon) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Coupon) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("coupon ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("coupon ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsExpiredAt reports whether the coupon is past its expiry at the given time.
func (c *Coupon) IsExpiredAt(at time.Time) bool {
	return !at.Before(c.expiresAt)
}

// EffectiveStatus returns the status with lazy expiry applied: an active
// coupon past its expiry reads as expired without a write.
func (c *Coupon) EffectiveStatus(at time.Time) vo.CouponStatus {
	if c.status == vo.StatusActive && c.IsExpiredAt(at) {
		return vo.StatusExpired
	}
	return c.status
}

// MarkUsed consumes an active, unexpired coupon.
func (c *Coupon) MarkUsed(at time.Time) error {
	if c.status != vo.StatusActive {
		return ErrNotActive
	}
	if c.IsExpiredAt(at) {
		return ErrExpired
	}
	c.status = vo.StatusUsed
	used := at
	c.usedAt = &used
	c.updatedAt = at
	return nil
}

// MarkExpired persists the expired status for an active coupon past expiry.
func (c *Coupon) MarkExpired(at time.Time) error {
	if c.status != vo.StatusActive {
		return ErrNotActive
	}
	if !c.IsExpiredAt(at) {
		return fmt.Errorf("coupon has not expired yet")
	}
	c.status = vo.StatusExpired
	c.updatedAt = at
	return nil
}

// Snapshot is the API view of a coupon.
type Snapshot struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	Code      string     `json:"code"`
	Amount    int        `json:"amount"`
	Status    string     `json:"status"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c *Coupon) Snapshot() Snapshot {
	return Snapshot{
		ID:        c.id,
		UserID:    c.userID,
		Code:      c.code,
		Amount:    c.amount,
		Status:    c.status.String(),
		ExpiresAt: c.expiresAt,
		UsedAt:    c.usedAt,
		CreatedAt: c.createdAt,
	}
}
