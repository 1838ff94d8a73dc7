package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonmarket/internal/domain"
)

// RequireRoles must run after Auth. The role is the one captured in the token at sign in.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		if !allowed[claims.Role] {
			abort(c, http.StatusForbidden, "forbidden", "role "+claims.Role.String()+" may not access this resource")
			return
		}
		c.Next()
	}
}
