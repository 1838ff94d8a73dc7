package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain"
	"salonmarket/internal/http/middleware"
	"salonmarket/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	var verr domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnknownCoupon):
		respondError(c, http.StatusUnprocessableEntity, "unknown_coupon", "Invalid coupon code", nil)
	case errors.As(err, &verr):
		var details any
		if verr.Field != "" {
			details = gin.H{"field": verr.Field}
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		utils.LogWarn(middleware.GetRequestID(c), "http", c.FullPath(), "request failed", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
