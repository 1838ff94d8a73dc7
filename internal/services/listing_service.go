package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

const (
	minServiceMinutes   = 15
	minServiceDescChars = 10
)

// SellerKey is the products.seller_id of a seller account.
func SellerKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// ListingService lets sellers manage their products and providers their service menu.
// Every write is scoped to the caller's own listing; other listings read as not found.
type ListingService struct {
	Users     UserStore
	Products  ProductStore
	Providers ProviderStore
	RequestID string
	Now       func() time.Time
}

func (s ListingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validateProduct(in models.ProductInput) error {
	if len([]rune(strings.TrimSpace(in.Name))) < 2 {
		return domain.ValidationError{Field: "name", Msg: "must be at least 2 characters"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.ValidationError{Field: "category", Msg: "required"}
	}
	if !in.Price.IsPositive() {
		return domain.ValidationError{Field: "price", Msg: "must be greater than 0"}
	}
	if in.SalePrice != nil && (!in.SalePrice.IsPositive() || !in.SalePrice.LessThan(in.Price)) {
		return domain.ValidationError{Field: "salePrice", Msg: "must be between 0 and price"}
	}
	if in.StockQuantity < 0 {
		return domain.ValidationError{Field: "stockQuantity", Msg: "cannot be negative"}
	}
	return nil
}

func applyProductInput(p models.Product, in models.ProductInput) models.Product {
	p.Name = utils.NormalizeSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Brand = strings.TrimSpace(in.Brand)
	p.Category = strings.ToLower(strings.TrimSpace(in.Category))
	p.Price = in.Price.Round(2)
	p.SalePrice = nil
	if in.SalePrice != nil {
		v := in.SalePrice.Round(2)
		p.SalePrice = &v
	}
	p.StockQuantity = in.StockQuantity
	p.ImageURL = strings.TrimSpace(in.ImageURL)
	p.Tags = utils.SplitTags(in.Tags)
	return p
}

func (s ListingService) SellerProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	return s.Products.ListBySeller(ctx, SellerKey(userID))
}

func (s ListingService) CreateProduct(ctx context.Context, userID int64, in models.ProductInput) (models.Product, error) {
	if err := validateProduct(in); err != nil {
		return models.Product{}, err
	}
	seller, err := s.Users.GetProfile(ctx, userID)
	if err != nil {
		return models.Product{}, err
	}
	p := applyProductInput(models.Product{
		ID:         uuid.NewString(),
		SellerID:   SellerKey(userID),
		SellerName: seller.FullName,
		Tags:       []string{},
		CreatedAt:  s.now().UTC(),
	}, in)
	if err := s.Products.Create(ctx, p); err != nil {
		return models.Product{}, err
	}
	utils.LogEvent(s.RequestID, "listing", "product_create", fmt.Sprintf("seller_id=%s product_id=%s", p.SellerID, p.ID))
	return p, nil
}

// ownProduct hides other sellers' products behind not found.
func (s ListingService) ownProduct(ctx context.Context, userID int64, id string) (models.Product, error) {
	p, err := s.Products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.Product{}, err
	}
	if p.SellerID != SellerKey(userID) {
		return models.Product{}, domain.NotFoundError{Resource: "product"}
	}
	return p, nil
}

func (s ListingService) UpdateProduct(ctx context.Context, userID int64, id string, in models.ProductInput) (models.Product, error) {
	if err := validateProduct(in); err != nil {
		return models.Product{}, err
	}
	p, err := s.ownProduct(ctx, userID, id)
	if err != nil {
		return models.Product{}, err
	}
	p = applyProductInput(p, in)
	if err := s.Products.Update(ctx, p); err != nil {
		return models.Product{}, err
	}
	utils.LogEvent(s.RequestID, "listing", "product_update", fmt.Sprintf("seller_id=%s product_id=%s", p.SellerID, p.ID))
	return p, nil
}

func (s ListingService) DeleteProduct(ctx context.Context, userID int64, id string) error {
	p, err := s.ownProduct(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.Products.Delete(ctx, p.SellerID, p.ID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "listing", "product_delete", fmt.Sprintf("seller_id=%s product_id=%s", p.SellerID, p.ID))
	return nil
}

func validateService(in models.ServiceInput) error {
	if len([]rune(strings.TrimSpace(in.Name))) < 2 {
		return domain.ValidationError{Field: "name", Msg: "must be at least 2 characters"}
	}
	if len([]rune(strings.TrimSpace(in.Description))) < minServiceDescChars {
		return domain.ValidationError{Field: "description", Msg: fmt.Sprintf("must be at least %d characters", minServiceDescChars)}
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.ValidationError{Field: "category", Msg: "required"}
	}
	if !in.Price.IsPositive() {
		return domain.ValidationError{Field: "price", Msg: "must be greater than 0"}
	}
	if in.DurationMinutes < minServiceMinutes {
		return domain.ValidationError{Field: "durationMinutes", Msg: fmt.Sprintf("must be at least %d minutes", minServiceMinutes)}
	}
	return nil
}

func applyServiceInput(svc models.Service, in models.ServiceInput) models.Service {
	svc.Name = utils.NormalizeSpace(in.Name)
	svc.Description = strings.TrimSpace(in.Description)
	svc.Category = strings.TrimSpace(in.Category)
	svc.Price = in.Price.Round(2)
	svc.DurationMinutes = in.DurationMinutes
	return svc
}

// ownListing is the provider listing of a provider or salon account.
func (s ListingService) ownListing(ctx context.Context, userID int64) (models.Provider, error) {
	p, err := s.Providers.GetByUserID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Provider{}, domain.NotFoundError{Resource: "provider listing", Err: err}
		}
		return models.Provider{}, err
	}
	return p, nil
}

func (s ListingService) ProviderServices(ctx context.Context, userID int64) ([]models.Service, error) {
	p, err := s.ownListing(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.Services == nil {
		return []models.Service{}, nil
	}
	return p.Services, nil
}

func (s ListingService) CreateService(ctx context.Context, userID int64, in models.ServiceInput) (models.Service, error) {
	if err := validateService(in); err != nil {
		return models.Service{}, err
	}
	p, err := s.ownListing(ctx, userID)
	if err != nil {
		return models.Service{}, err
	}
	svc := applyServiceInput(models.Service{ID: uuid.NewString(), ProviderID: p.ID}, in)
	if err := s.Providers.CreateService(ctx, svc); err != nil {
		return models.Service{}, err
	}
	utils.LogEvent(s.RequestID, "listing", "service_create", fmt.Sprintf("provider_id=%s service_id=%s", p.ID, svc.ID))
	return svc, nil
}

func (s ListingService) UpdateService(ctx context.Context, userID int64, id string, in models.ServiceInput) (models.Service, error) {
	if err := validateService(in); err != nil {
		return models.Service{}, err
	}
	p, err := s.ownListing(ctx, userID)
	if err != nil {
		return models.Service{}, err
	}
	svc, ok := p.FindService(strings.TrimSpace(id))
	if !ok {
		return models.Service{}, domain.NotFoundError{Resource: "service"}
	}
	svc = applyServiceInput(svc, in)
	if err := s.Providers.UpdateService(ctx, svc); err != nil {
		return models.Service{}, err
	}
	utils.LogEvent(s.RequestID, "listing", "service_update", fmt.Sprintf("provider_id=%s service_id=%s", p.ID, svc.ID))
	return svc, nil
}

func (s ListingService) DeleteService(ctx context.Context, userID int64, id string) error {
	p, err := s.ownListing(ctx, userID)
	if err != nil {
		return err
	}
	svc, ok := p.FindService(strings.TrimSpace(id))
	if !ok {
		return domain.NotFoundError{Resource: "service"}
	}
	if err := s.Providers.DeleteService(ctx, p.ID, svc.ID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "listing", "service_delete", fmt.Sprintf("provider_id=%s service_id=%s", p.ID, svc.ID))
	return nil
}
