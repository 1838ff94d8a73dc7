package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

// Product sort keys accepted by the catalog.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// FilterProducts keeps products matching category, free-text query and the inclusive price range.
func FilterProducts(list []models.Product, f models.ProductFilter) []models.Product {
	category := strings.TrimSpace(f.Category)
	query := strings.TrimSpace(f.Query)

	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if query != "" && !productMatches(p, query) {
			continue
		}
		price := p.EffectivePrice()
		if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func productMatches(p models.Product, query string) bool {
	if utils.ContainsFold(p.Name, query) || utils.ContainsFold(p.Brand, query) {
		return true
	}
	for _, tag := range p.Tags {
		if utils.ContainsFold(tag, query) {
			return true
		}
	}
	return false
}

// SortProducts sorts in place and returns list. Unknown keys sort as featured.
func SortProducts(list []models.Product, key string) []models.Product {
	var less func(a, b models.Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b models.Product) bool { return a.EffectivePrice().LessThan(b.EffectivePrice()) }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return a.EffectivePrice().GreaterThan(b.EffectivePrice()) }
	case SortRating:
		less = func(a, b models.Product) bool { return a.Rating > b.Rating }
	case SortNewest:
		less = func(a, b models.Product) bool { return a.ID > b.ID }
	default:
		less = func(a, b models.Product) bool { return a.IsFeatured && !b.IsFeatured }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
	return list
}

// CheapestService returns the lowest service price of p, or false when it has no services.
func CheapestService(p models.Provider) (decimal.Decimal, bool) {
	if len(p.Services) == 0 {
		return decimal.Zero, false
	}
	min := p.Services[0].Price
	for _, s := range p.Services[1:] {
		if s.Price.LessThan(min) {
			min = s.Price
		}
	}
	return min, true
}

var priceBuckets = map[string][2]decimal.Decimal{
	"0-25":   {decimal.Zero, decimal.NewFromInt(25)},
	"25-50":  {decimal.NewFromInt(25), decimal.NewFromInt(50)},
	"50-100": {decimal.NewFromInt(50), decimal.NewFromInt(100)},
}

func inPriceBucket(p models.Provider, bucket string) bool {
	if bucket == "" {
		return true
	}
	cheapest, ok := CheapestService(p)
	if !ok {
		return false
	}
	if bucket == "100+" {
		return cheapest.GreaterThanOrEqual(decimal.NewFromInt(100))
	}
	b, known := priceBuckets[bucket]
	if !known {
		return true
	}
	return cheapest.GreaterThanOrEqual(b[0]) && cheapest.LessThan(b[1])
}

func offersService(p models.Provider, service string) bool {
	for _, s := range p.Specialties {
		if utils.ContainsFold(s, service) {
			return true
		}
	}
	for _, s := range p.Services {
		if utils.ContainsFold(s.Category, service) || utils.ContainsFold(s.Name, service) {
			return true
		}
	}
	return false
}

// FilterProviders applies the search panel filters.
func FilterProviders(list []models.Provider, f models.ProviderFilter) []models.Provider {
	service := strings.TrimSpace(f.Service)
	out := make([]models.Provider, 0, len(list))
	for _, p := range list {
		if service != "" && !offersService(p, service) {
			continue
		}
		if !inPriceBucket(p, strings.TrimSpace(f.PriceRange)) {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		if f.HomeService && !p.HomeService {
			continue
		}
		if f.SalonService && !p.SalonService {
			continue
		}
		out = append(out, p)
	}
	return out
}
