package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/http/middleware"
)

type statusRequest struct {
	Status string `json:"status"`
}

// GET /api/appointments
func (a *App) ListAppointments(c *gin.Context) {
	list, err := a.appointmentService(c).List(c.Request.Context(), middleware.RequestContext(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// PUT /api/appointments/:id/status
func (a *App) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	appt, err := a.appointmentService(c).UpdateStatus(c.Request.Context(), middleware.RequestContext(c), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// GET /api/appointments/:id/confirmation.pdf
func (a *App) AppointmentConfirmationPDF(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := a.docsService(c).AppointmentConfirmation(c.Request.Context(), middleware.RequestContext(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdf)
}
