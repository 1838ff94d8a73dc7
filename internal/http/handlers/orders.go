package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/services"
)

// GET /api/orders
func (a *App) ListOrders(c *gin.Context) {
	list, err := services.OrderService{Orders: a.Orders}.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// GET /api/orders/:id
func (a *App) GetOrder(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	o, err := services.OrderService{Orders: a.Orders}.GetForOwner(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/orders/:id/invoice.pdf
func (a *App) OrderInvoicePDF(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := a.docsService(c).OrderInvoice(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdf)
}
