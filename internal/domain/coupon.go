package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponFixed      CouponKind = "fixed"
)

type Coupon struct {
	Code   string          `json:"code"`
	Kind   CouponKind      `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// DiscountFor returns the unclamped discount this coupon gives on subtotal.
func (c Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	switch c.Kind {
	case CouponPercentage:
		return subtotal.Mul(c.Amount).Div(decimal.NewFromInt(100)).Round(2)
	case CouponFixed:
		return c.Amount
	}
	return decimal.Zero
}

var couponTable = map[string]Coupon{
	"SAVE10":    {Code: "SAVE10", Kind: CouponPercentage, Amount: decimal.NewFromInt(10)},
	"WELCOME20": {Code: "WELCOME20", Kind: CouponPercentage, Amount: decimal.NewFromInt(20)},
	"FLAT5":     {Code: "FLAT5", Kind: CouponFixed, Amount: decimal.NewFromInt(5)},
}

// NormalizeCouponCode trims and upper-cases user input.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupCoupon finds a coupon by user-entered code.
func LookupCoupon(code string) (Coupon, bool) {
	c, ok := couponTable[NormalizeCouponCode(code)]
	return c, ok
}
