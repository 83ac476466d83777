// Package token generates random coupon codes.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const couponCodePrefix = "RWD-"

const couponRandomBytes = 8

type CouponCodeGenerator struct{}

func NewCouponCodeGenerator() *CouponCodeGenerator {
	return &CouponCodeGenerator{}
}

// GenerateCouponCode returns a code like RWD-9F2A0C4E1B7D3E5F. Uniqueness is
// enforced by the database constraint on the code column.
func (g *CouponCodeGenerator) GenerateCouponCode() (string, error) {
	randomBytes := make([]byte, couponRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return couponCodePrefix + strings.ToUpper(hex.EncodeToString(randomBytes)), nil
}
