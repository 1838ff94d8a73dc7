package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/state"
)

type startWizardRequest struct {
	ProviderID string `json:"providerId"`
	ServiceID  string `json:"serviceId"`
}

// POST /api/bookings/wizard
func (a *App) StartWizard(c *gin.Context) {
	var req startWizardRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := a.bookingService(c).Start(c.Request.Context(), currentUserID(c), req.ProviderID, req.ServiceID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GET /api/bookings/wizard/:sid
func (a *App) GetWizard(c *gin.Context) {
	v, err := a.bookingService(c).Get(c.Request.Context(), currentUserID(c), c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// PATCH /api/bookings/wizard/:sid
func (a *App) UpdateWizard(c *gin.Context) {
	var patch state.DraftPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	v, err := a.bookingService(c).Update(c.Request.Context(), currentUserID(c), c.Param("sid"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/bookings/wizard/:sid/next
func (a *App) NextWizardStep(c *gin.Context) {
	v, err := a.bookingService(c).Next(c.Request.Context(), currentUserID(c), c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/bookings/wizard/:sid/prev
func (a *App) PrevWizardStep(c *gin.Context) {
	v, err := a.bookingService(c).Prev(c.Request.Context(), currentUserID(c), c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GET /api/bookings/wizard/:sid/summary
func (a *App) WizardSummary(c *gin.Context) {
	sum, err := a.bookingService(c).Summary(c.Request.Context(), currentUserID(c), c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// POST /api/bookings/wizard/:sid/confirm
func (a *App) ConfirmBooking(c *gin.Context) {
	appt, err := a.bookingService(c).Confirm(c.Request.Context(), currentUserID(c), c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}
