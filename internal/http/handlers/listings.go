package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain/models"
)

// GET /api/seller/products
func (a *App) ListSellerProducts(c *gin.Context) {
	list, err := a.listingService(c).SellerProducts(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list, "count": len(list)})
}

// POST /api/seller/products
func (a *App) CreateSellerProduct(c *gin.Context) {
	var in models.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := a.listingService(c).CreateProduct(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/seller/products/:id
func (a *App) UpdateSellerProduct(c *gin.Context) {
	var in models.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := a.listingService(c).UpdateProduct(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/seller/products/:id
func (a *App) DeleteSellerProduct(c *gin.Context) {
	if err := a.listingService(c).DeleteProduct(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/provider/services
func (a *App) ListProviderServices(c *gin.Context) {
	list, err := a.listingService(c).ProviderServices(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list, "count": len(list)})
}

// POST /api/provider/services
func (a *App) CreateProviderService(c *gin.Context) {
	var in models.ServiceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	s, err := a.listingService(c).CreateService(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/provider/services/:id
func (a *App) UpdateProviderService(c *gin.Context) {
	var in models.ServiceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	s, err := a.listingService(c).UpdateService(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/provider/services/:id
func (a *App) DeleteProviderService(c *gin.Context) {
	if err := a.listingService(c).DeleteService(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
