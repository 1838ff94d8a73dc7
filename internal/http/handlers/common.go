package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/http/middleware"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid JSON payload", nil)
		return false
	}
	return true
}

// int64Param parses a positive numeric path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// currentUserID is the authenticated caller's id. Auth must have run.
func currentUserID(c *gin.Context) int64 {
	return int64(middleware.RequestContext(c).UserID)
}

func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
