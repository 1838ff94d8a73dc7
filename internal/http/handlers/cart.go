package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code"`
}

// GET /api/cart
func (a *App) GetCart(c *gin.Context) {
	v, err := a.cartService(c).Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/cart/items
func (a *App) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	v, err := a.cartService(c).AddItem(c.Request.Context(), currentUserID(c), req.ProductID, req.Variant, req.Quantity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// PATCH /api/cart/items/:lineId
func (a *App) UpdateCartItem(c *gin.Context) {
	var req quantityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Quantity == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "quantity: required", gin.H{"field": "quantity"})
		return
	}
	v, err := a.cartService(c).UpdateQuantity(c.Request.Context(), currentUserID(c), c.Param("lineId"), *req.Quantity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/cart/items/:lineId
func (a *App) RemoveCartItem(c *gin.Context) {
	v, err := a.cartService(c).RemoveItem(c.Request.Context(), currentUserID(c), c.Param("lineId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/cart
func (a *App) ClearCart(c *gin.Context) {
	v, err := a.cartService(c).Clear(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/cart/coupon
func (a *App) ApplyCoupon(c *gin.Context) {
	var req couponRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := a.cartService(c).ApplyCoupon(c.Request.Context(), currentUserID(c), req.Code)
	if errors.Is(err, domain.ErrUnknownCoupon) {
		respondError(c, http.StatusUnprocessableEntity, "unknown_coupon", "Invalid coupon code", gin.H{"cart": v})
		return
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/cart/coupon
func (a *App) RemoveCoupon(c *gin.Context) {
	v, err := a.cartService(c).RemoveCoupon(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/cart/checkout
func (a *App) Checkout(c *gin.Context) {
	order, err := a.cartService(c).Checkout(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
