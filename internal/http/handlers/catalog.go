package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salonmarket/internal/domain/models"
	"salonmarket/internal/utils"
)

func optionalPrice(c *gin.Context, key string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	d, err := utils.ParseMoney(raw)
	if err != nil || d.IsNegative() {
		respondError(c, http.StatusBadRequest, "invalid_"+key, key+" must be a non-negative amount", nil)
		return nil, false
	}
	return &d, true
}

// GET /api/products
func (a *App) ListProducts(c *gin.Context) {
	minPrice, ok := optionalPrice(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := optionalPrice(c, "max_price")
	if !ok {
		return
	}
	list, err := a.Catalog.ListProducts(c.Request.Context(), models.ProductFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.Query("sort"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list, "count": len(list)})
}

// GET /api/products/:id
func (a *App) GetProduct(c *gin.Context) {
	p, err := a.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/providers
func (a *App) ListProviders(c *gin.Context) {
	var rating float64
	if raw := strings.TrimSpace(c.Query("rating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			respondError(c, http.StatusBadRequest, "invalid_rating", "rating must be between 0 and 5", nil)
			return
		}
		rating = v
	}
	list, err := a.Catalog.ListProviders(c.Request.Context(), models.ProviderFilter{
		Service:      c.Query("service"),
		PriceRange:   c.Query("price_range"),
		MinRating:    rating,
		HomeService:  c.Query("home_service") == "true",
		SalonService: c.Query("salon_service") == "true",
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": list, "count": len(list)})
}

// GET /api/providers/:id
func (a *App) GetProvider(c *gin.Context) {
	p, err := a.Catalog.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/providers/:id/availability?date=YYYY-MM-DD
func (a *App) ProviderAvailability(c *gin.Context) {
	date := c.Query("date")
	slots, err := a.Catalog.Availability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": c.Param("id"), "date": date, "slots": slots})
}
