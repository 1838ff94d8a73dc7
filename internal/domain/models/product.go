package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string           `json:"id"`
	SellerID      string           `json:"sellerId"`
	SellerName    string           `json:"sellerName,omitempty"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Brand         string           `json:"brand"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
	Rating        float64          `json:"rating"`
	TotalReviews  int              `json:"totalReviews"`
	IsFeatured    bool             `json:"isFeatured"`
	StockQuantity int              `json:"stockQuantity"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Tags          []string         `json:"tags"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// EffectivePrice is the sale price when one is set, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil && p.SalePrice.IsPositive() {
		return *p.SalePrice
	}
	return p.Price
}

// ProductFilter mirrors the catalog query string.
type ProductFilter struct {
	Category string
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
}

// ProductInput is what a seller submits to list or edit a product.
// Tags arrive as one comma or semicolon separated string.
type ProductInput struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	StockQuantity int              `json:"stockQuantity"`
	ImageURL      string           `json:"imageUrl"`
	Tags          string           `json:"tags"`
}
