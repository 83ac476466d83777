// Package valueobjects contains value objects for the coupon domain.
package valueobjects

import "fmt"

// CouponStatus is the redemption state of a reward coupon.
type CouponStatus string

const (
	StatusActive  CouponStatus = "active"
	StatusUsed    CouponStatus = "used"
	StatusExpired CouponStatus = "expired"
)

var validStatuses = map[CouponStatus]bool{
	StatusActive:  true,
	StatusUsed:    true,
	StatusExpired: true,
}

func (s CouponStatus) String() string {
	return string(s)
}

func (s CouponStatus) IsValid() bool {
	return validStatuses[s]
}

func (s CouponStatus) IsActive() bool {
	return s == StatusActive
}

func NewCouponStatus(s string) (CouponStatus, error) {
	status := CouponStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid coupon status: %s", s)
	}
	return status, nil
}
