package domain

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 50 still pays shipping.
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.RequireFromString("5.99")
	TaxRate               = decimal.RequireFromString("0.08")
)

// DiscountPolicy decides what happens when a coupon is worth more than the subtotal.
type DiscountPolicy int

const (
	// ClampDiscount caps the discount at the subtotal.
	ClampDiscount DiscountPolicy = iota
	// AllowNegativeTotal applies the coupon as-is; the total may go below zero.
	AllowNegativeTotal
)

func (p DiscountPolicy) String() string {
	if p == AllowNegativeTotal {
		return "allow_negative"
	}
	return "clamp"
}

// CartLine is one product/variant in a cart. Quantity is always >= 1.
type CartLine struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Variant   string          `json:"variant,omitempty"`
	SellerID  string          `json:"sellerId,omitempty"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the priced view of a cart.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// ShippingFor returns the flat fee unless the subtotal is strictly above the threshold.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// TaxFor applies the flat rate to the subtotal only.
func TaxFor(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// ComputeTotals prices lines with an optional coupon.
// total == subtotal + shipping + tax - discount holds under every policy.
func ComputeTotals(lines []CartLine, coupon *Coupon, policy DiscountPolicy) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
		count += l.Quantity
	}

	discount := decimal.Zero
	if coupon != nil {
		discount = coupon.DiscountFor(subtotal)
	}
	if policy == ClampDiscount && discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	shipping := ShippingFor(subtotal)
	tax := TaxFor(subtotal)

	return Totals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Discount:  discount,
		Total:     subtotal.Add(shipping).Add(tax).Sub(discount),
		ItemCount: count,
	}
}
