package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain"
	"salonmarket/internal/services"
)

const claimsKey = "auth_claims"

// TokenParser validates a bearer token.
type TokenParser interface {
	ParseToken(ctx context.Context, raw string) (services.Claims, error)
}

// Auth rejects requests without a valid, unrevoked bearer token.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		claims, err := parser.ParseToken(c.Request.Context(), raw)
		if err != nil {
			if domain.IsUnauthorized(err) {
				abort(c, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}
			_ = c.Error(err)
			abort(c, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(header[7:])
	return tok, tok != ""
}

// GetClaims returns the claims stored by Auth.
func GetClaims(c *gin.Context) (services.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return services.Claims{}, false
	}
	claims, ok := v.(services.Claims)
	return claims, ok
}

// RequestContext is the authenticated caller, or the zero value.
func RequestContext(c *gin.Context) domain.RequestContext {
	claims, ok := GetClaims(c)
	if !ok {
		return domain.RequestContext{}
	}
	return domain.RequestContext{UserID: domain.ID(claims.UserID), Role: claims.Role, JTI: claims.ID}
}

// abort writes the same payload shape as the handlers' error responses.
func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"message":    message,
		"request_id": GetRequestID(c),
	})
}
