package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

func newListingService() (ListingService, *fakeProducts, *fakeProviders) {
	users := newFakeUsers()
	users.profiles[7] = models.User{ID: 7, FullName: "Dana Seller", Role: domain.RoleSeller}
	users.profiles[8] = models.User{ID: 8, FullName: "Other Seller", Role: domain.RoleSeller}
	products := newFakeProducts()
	providers := newFakeProviders()
	return ListingService{
		Users:     users,
		Products:  products,
		Providers: providers,
		Now:       func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) },
	}, products, providers
}

func curlCream() models.ProductInput {
	sale := price("19.99")
	return models.ProductInput{
		Name: " Curl  Cream ", Brand: "CurlCo", Category: "Styling", Price: price("22.99"), SalePrice: &sale,
		StockQuantity: 10, Tags: "Curly; vegan,",
	}
}

func TestListingService_SellerProductLifecycle(t *testing.T) {
	svc, products, _ := newListingService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, 7, curlCream())
	require.NoError(t, err)
	assert.Equal(t, "7", p.SellerID)
	assert.Equal(t, "Dana Seller", p.SellerName)
	assert.Equal(t, "Curl Cream", p.Name)
	assert.Equal(t, "styling", p.Category)
	assert.Equal(t, []string{"curly", "vegan"}, p.Tags)
	assert.True(t, p.EffectivePrice().Equal(price("19.99")))

	mine, err := svc.SellerProducts(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 2, "seeded pomade plus the new cream")

	in := curlCream()
	in.SalePrice = nil
	in.StockQuantity = 2
	updated, err := svc.UpdateProduct(ctx, 7, p.ID, in)
	require.NoError(t, err)
	assert.Nil(t, updated.SalePrice)
	stored, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.StockQuantity)

	require.NoError(t, svc.DeleteProduct(ctx, 7, p.ID))
	_, err = products.GetByID(ctx, p.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestListingService_ProductsAreScopedToSeller(t *testing.T) {
	svc, products, _ := newListingService()
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 8, "4", curlCream())
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(svc.DeleteProduct(ctx, 8, "4")))

	pomade, err := products.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Styling Pomade", pomade.Name)
}

func TestListingService_ProductValidation(t *testing.T) {
	svc, _, _ := newListingService()
	ctx := context.Background()

	cases := map[string]func(*models.ProductInput){
		"name":          func(in *models.ProductInput) { in.Name = "x" },
		"category":      func(in *models.ProductInput) { in.Category = " " },
		"price":         func(in *models.ProductInput) { in.Price = price("0") },
		"salePrice":     func(in *models.ProductInput) { in.SalePrice = priceP("30") },
		"stockQuantity": func(in *models.ProductInput) { in.StockQuantity = -1 },
	}
	for field, mutate := range cases {
		in := curlCream()
		mutate(&in)
		_, err := svc.CreateProduct(ctx, 7, in)
		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func silkPress() models.ServiceInput {
	return models.ServiceInput{
		Name: "Silk Press", Description: "Blow out and flat iron finish", Category: "Styling",
		Price: price("95"), DurationMinutes: 75,
	}
}

func TestListingService_ProviderServiceMenu(t *testing.T) {
	svc, _, providers := newListingService()
	ctx := context.Background()

	created, err := svc.CreateService(ctx, 50, silkPress())
	require.NoError(t, err)
	assert.Equal(t, "1", created.ProviderID)

	menu, err := svc.ProviderServices(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, menu, 4)

	in := silkPress()
	in.DurationMinutes = 90
	_, err = svc.UpdateService(ctx, 50, created.ID, in)
	require.NoError(t, err)
	stored, err := providers.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.DurationMinutes)

	require.NoError(t, svc.DeleteService(ctx, 50, created.ID))
	_, err = providers.GetService(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestListingService_ServicesAreScopedToProvider(t *testing.T) {
	svc, _, _ := newListingService()
	ctx := context.Background()

	// service 4 belongs to Classic Cuts, not to the account owning Elite Hair
	_, err := svc.UpdateService(ctx, 50, "4", silkPress())
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(svc.DeleteService(ctx, 50, "4")))

	_, err = svc.CreateService(ctx, 99, silkPress())
	assert.True(t, domain.IsNotFound(err), "account without a provider listing")

	in := silkPress()
	in.DurationMinutes = 10
	_, err = svc.CreateService(ctx, 50, in)
	assert.True(t, domain.IsValidation(err))
	in = silkPress()
	in.Description = "short"
	_, err = svc.CreateService(ctx, 50, in)
	assert.True(t, domain.IsValidation(err))
}
