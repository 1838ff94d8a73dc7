package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customerId"`
	OrderNumber    string          `json:"orderNumber"`
	Status         string          `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CouponCode     string          `json:"couponCode,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	Items          []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID string          `json:"productId"`
	SellerID  string          `json:"sellerId"`
	Name      string          `json:"name"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
