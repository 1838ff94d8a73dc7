package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

func ids(list []models.Product) []string {
	out := []string{}
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	all := []models.Product{hairOil, clippers, faceCream, pomade}

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(FilterProducts(all, models.ProductFilter{Category: "all"})))
	assert.Equal(t, []string{"2"}, ids(FilterProducts(all, models.ProductFilter{Category: "tools"})))
	assert.Equal(t, []string{"1"}, ids(FilterProducts(all, models.ProductFilter{Query: "VEGAN"})))
	assert.Equal(t, []string{"2"}, ids(FilterProducts(all, models.ProductFilter{Query: "procut"})))

	// effective price of the hair oil is 35.99
	inRange := FilterProducts(all, models.ProductFilter{MinPrice: priceP("30"), MaxPrice: priceP("35.99")})
	assert.Equal(t, []string{"1"}, ids(inRange))
}

func TestSortProducts(t *testing.T) {
	all := func() []models.Product { return []models.Product{faceCream, hairOil, pomade, clippers} }

	assert.Equal(t, []string{"4", "3", "1", "2"}, ids(SortProducts(all(), SortPriceLow)))
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(SortProducts(all(), SortPriceHigh)))
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(SortProducts(all(), SortRating)))
	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(SortProducts(all(), SortNewest)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(SortProducts(all(), SortFeatured)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(SortProducts(all(), "")))
}

func TestFilterProviders(t *testing.T) {
	all := []models.Provider{eliteHair, classicCuts}
	names := func(list []models.Provider) []string {
		out := []string{}
		for _, p := range list {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1"}, names(FilterProviders(all, models.ProviderFilter{Service: "coloring"})))
	assert.Equal(t, []string{"2"}, names(FilterProviders(all, models.ProviderFilter{Service: "beard"})))
	assert.Equal(t, []string{"2"}, names(FilterProviders(all, models.ProviderFilter{PriceRange: "0-25"})))
	assert.Equal(t, []string{"1"}, names(FilterProviders(all, models.ProviderFilter{PriceRange: "50-100"})))
	assert.Empty(t, FilterProviders(all, models.ProviderFilter{PriceRange: "100+"}))
	assert.Equal(t, []string{"1"}, names(FilterProviders(all, models.ProviderFilter{MinRating: 4.9})))
	assert.Equal(t, []string{"1"}, names(FilterProviders(all, models.ProviderFilter{HomeService: true})))
	assert.Len(t, FilterProviders(all, models.ProviderFilter{SalonService: true}), 2)
}

func TestCatalogService_ListProductsSharesConcurrentLoads(t *testing.T) {
	products := newFakeProducts()
	products.gate = make(chan struct{})
	svc := NewCatalogService(products, newFakeProviders())

	var wg sync.WaitGroup
	results := make([][]models.Product, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list, err := svc.ListProducts(context.Background(), models.ProductFilter{Sort: SortPriceLow})
			assert.NoError(t, err)
			results[i] = list
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(products.gate)
	wg.Wait()

	assert.LessOrEqual(t, products.calls, 4)
	for _, r := range results {
		assert.Equal(t, "9", r[0].ID)
	}
}

func TestCatalogService_SharedLoadIgnoresCallerCancel(t *testing.T) {
	products := newFakeProducts()
	products.gate = make(chan struct{})
	svc := NewCatalogService(products, newFakeProviders())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.ListProducts(ctx, models.ProductFilter{})
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	close(products.gate)

	assert.NoError(t, <-done)
}

func TestCatalogService_ListProductsRejectsInvertedRange(t *testing.T) {
	svc := NewCatalogService(newFakeProducts(), newFakeProviders())
	_, err := svc.ListProducts(context.Background(), models.ProductFilter{MinPrice: priceP("50"), MaxPrice: priceP("10")})
	assert.True(t, domain.IsValidation(err))
}

func TestCatalogService_Availability(t *testing.T) {
	svc := NewCatalogService(newFakeProducts(), newFakeProviders())
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
	svc.Now = func() time.Time { return now }
	ctx := context.Background()

	slots, err := svc.Availability(ctx, "1", "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, domain.DailySlots, slots)

	slots, err = svc.Availability(ctx, "1", "2026-10-18")
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = svc.Availability(ctx, "1", "20/10/2026")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Availability(ctx, "404", "2026-10-20")
	assert.True(t, domain.IsNotFound(err))
}
