package services

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

// CatalogService serves products, providers and provider availability.
type CatalogService struct {
	Products  ProductStore
	Providers ProviderStore
	Now       func() time.Time

	group *singleflight.Group
}

func NewCatalogService(products ProductStore, providers ProviderStore) CatalogService {
	return CatalogService{
		Products:  products,
		Providers: providers,
		Now:       time.Now,
		group:     &singleflight.Group{},
	}
}

func (s CatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// allProducts collapses concurrent loads of the product table into one query.
// The shared query outlives the caller that started it, so one client going
// away does not fail the others waiting on it.
func (s CatalogService) allProducts(ctx context.Context) ([]models.Product, error) {
	if s.group == nil {
		return s.Products.List(ctx)
	}
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("products", func() (any, error) {
		return s.Products.List(shared)
	})
	if err != nil {
		return nil, err
	}
	list := v.([]models.Product)
	out := make([]models.Product, len(list))
	copy(out, list)
	return out, nil
}

func (s CatalogService) ListProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	all, err := s.allProducts(ctx)
	if err != nil {
		return nil, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, domain.ValidationError{Field: "min_price", Msg: "must not exceed max_price"}
	}
	return SortProducts(FilterProducts(all, f), f.Sort), nil
}

func (s CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s CatalogService) ListProviders(ctx context.Context, f models.ProviderFilter) ([]models.Provider, error) {
	all, err := s.Providers.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProviders(all, f), nil
}

func (s CatalogService) GetProvider(ctx context.Context, id string) (models.Provider, error) {
	return s.Providers.GetByID(ctx, id)
}

// Availability lists open slots of a provider on date (YYYY-MM-DD).
func (s CatalogService) Availability(ctx context.Context, providerID, date string) ([]string, error) {
	if _, err := s.Providers.GetByID(ctx, providerID); err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	slots := domain.AvailableSlots(day, s.now())
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}
